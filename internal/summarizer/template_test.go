package summarizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnglishTemplateSubstitution(t *testing.T) {
	got := EnglishTemplate("Bonalu", "Hyderabad")
	assert.Contains(t, got, "Bonalu is a traditional festival celebrated in Hyderabad district")
	assert.Contains(t, got, "Telangana")
}

func TestTemplatesAreDeterministic(t *testing.T) {
	first := EnglishTemplate("Bathukamma", "Warangal")
	second := EnglishTemplate("Bathukamma", "Warangal")
	assert.Equal(t, first, second, "template output must be byte identical for identical inputs")

	assert.Equal(t, TeluguTemplate("Bathukamma", "Warangal"), TeluguTemplate("Bathukamma", "Warangal"))
}

func TestTeluguTemplateIsParallelNotTranslated(t *testing.T) {
	en := EnglishTemplate("Bonalu", "Hyderabad")
	te := TeluguTemplate("Bonalu", "Hyderabad")

	assert.Contains(t, te, "Bonalu")
	assert.Contains(t, te, "Hyderabad")
	assert.Contains(t, te, "తెలంగాణ")
	assert.NotEqual(t, en, te)
}

func TestTemplatesAreFiveSentences(t *testing.T) {
	for _, text := range []string{EnglishTemplate("Ugadi", "Medak"), TeluguTemplate("Ugadi", "Medak")} {
		paragraphs := strings.Split(text, "\n\n")
		assert.Len(t, paragraphs, 5)
	}
}
