package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillbridge/skillbridge/internal/analysis"
	"github.com/skillbridge/skillbridge/internal/schema"
)

func TestBuildRecommendationPrompt(t *testing.T) {
	prompt, err := BuildRecommendationPrompt(&GapPayload{
		MissingSkills:   []schema.Skill{{Name: "Kafka", Category: schema.CategoryInfrastructure}},
		ExperienceLevel: "mid",
		KnownSkills:     []string{"Python"},
	})

	require.NoError(t, err)
	assert.NotContains(t, prompt, "{{GAPS_JSON}}")
	assert.Contains(t, prompt, `"Kafka"`)
	assert.Contains(t, prompt, `"mid"`)
}

func TestBuildContextPrompt(t *testing.T) {
	prompt, err := BuildContextPrompt(&analysis.DeveloperContext{
		Languages: []analysis.LanguageSignal{{Name: "Go", Category: "language", Percentage: 80}},
	})

	require.NoError(t, err)
	assert.NotContains(t, prompt, "{{CONTEXT_JSON}}")
	assert.Contains(t, prompt, `"Go"`)
}
