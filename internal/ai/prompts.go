package ai

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/skillbridge/skillbridge/internal/analysis"
)

//go:embed prompt_recommend.md
var recommendTemplate string

//go:embed prompt_context.md
var contextTemplate string

// BuildRecommendationPrompt renders the shared recommendation prompt
// for a gap payload. All AI backends use the same template so their
// outputs stay comparable.
func BuildRecommendationPrompt(gaps *GapPayload) (string, error) {
	payload, err := json.MarshalIndent(gaps, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal gap payload: %w", err)
	}
	return strings.ReplaceAll(recommendTemplate, "{{GAPS_JSON}}", string(payload)), nil
}

// BuildContextPrompt renders the context enrichment prompt for a
// developer context.
func BuildContextPrompt(dev *analysis.DeveloperContext) (string, error) {
	payload, err := json.MarshalIndent(dev, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal developer context: %w", err)
	}
	return strings.ReplaceAll(contextTemplate, "{{CONTEXT_JSON}}", string(payload)), nil
}
