package summarizer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const maxSummaryTokens = 256

// GenAIClient calls the Gemini API for free-text summarization and audio
// transcription. Decoding is deterministic: temperature zero, bounded output.
type GenAIClient struct {
	client *genai.Client
	model  string
}

func NewGenAIClient(ctx context.Context, apiKey, model string) (*GenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GenAIClient{client: client, model: model}, nil
}

// Summarize condenses the story text into a short English summary.
func (c *GenAIClient) Summarize(ctx context.Context, text string) (string, error) {
	prompt := "Summarize the following festival story in five short sentences:\n\n" + text
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0),
		MaxOutputTokens: maxSummaryTokens,
	})
	if err != nil {
		return "", fmt.Errorf("GenAI summarize failed: %w", err)
	}

	out := strings.TrimSpace(resp.Text())
	if out == "" {
		return "", fmt.Errorf("empty summary returned")
	}
	return out, nil
}

// Transcribe turns an audio attachment into text.
func (c *GenAIClient) Transcribe(ctx context.Context, data []byte, mimeType string) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText("Transcribe this audio recording verbatim."),
		genai.NewPartFromBytes(data, mimeType),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0),
	})
	if err != nil {
		return "", fmt.Errorf("GenAI transcribe failed: %w", err)
	}
	return strings.TrimSpace(resp.Text()), nil
}
