package summarizer

import (
	"context"
	"fmt"

	"festfusion/internal/domain/submission"
	"festfusion/pkg/logger"
)

const (
	StrategyTemplate = "template"
	StrategyModel    = "model"
)

// ModelSummarizer is the external summarization capability. Nil means
// template-only operation.
type ModelSummarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Service produces the seed summaries for a submission. Strategy is fixed by
// configuration, never by content; model failures fall back to templates and
// are never fatal.
type Service struct {
	strategy string
	model    ModelSummarizer
	log      *logger.Logger
}

func NewService(strategy string, model ModelSummarizer, log *logger.Logger) *Service {
	if strategy != StrategyModel || model == nil {
		strategy = StrategyTemplate
	}
	return &Service{strategy: strategy, model: model, log: log}
}

// Generate fills the summary fields selected by the submission's language
// mode. Bilingual output is two independent renderings of the same inputs.
func (s *Service) Generate(ctx context.Context, sub *submission.Submission) (submission.Summary, error) {
	var out submission.Summary

	if sub.Language == submission.LanguageEN || sub.Language == submission.LanguageENTE {
		out.English = s.english(ctx, sub)
	}
	if sub.Language == submission.LanguageTE || sub.Language == submission.LanguageENTE {
		out.Telugu = TeluguTemplate(sub.FestivalName, sub.District)
	}
	return out, nil
}

func (s *Service) english(ctx context.Context, sub *submission.Submission) string {
	if s.strategy == StrategyModel && sub.StoryText != "" {
		text := composeStory(sub)
		summary, err := s.model.Summarize(ctx, text)
		if err == nil {
			return summary
		}
		if s.log != nil {
			s.log.Warnf("model summarization failed, falling back to template: %s", err)
		}
	}
	return EnglishTemplate(sub.FestivalName, sub.District)
}

// composeStory frames the free text for the model the way stories were framed
// in the archive: district context first, story, then the regional framing.
func composeStory(sub *submission.Submission) string {
	return fmt.Sprintf(
		"Festival story from %s district of Telangana, India: %s. This is a traditional festival celebrated in the Telangana region with cultural significance and local traditions.",
		sub.District, sub.StoryText,
	)
}
