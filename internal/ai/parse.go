package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON strips markdown code fences that chat models commonly
// wrap around JSON payloads.
func ExtractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

// ParseRecommendations interprets a model response as a recommendation
// list. Both a bare JSON array and an object carrying a
// "recommendations" array are accepted; anything else is an error the
// caller must surface, never swallow.
func ParseRecommendations(raw string) ([]RawRecommendation, error) {
	cleaned := ExtractJSON(raw)

	var list []RawRecommendation
	if err := json.Unmarshal([]byte(cleaned), &list); err == nil {
		return list, nil
	}

	var wrapped struct {
		Recommendations []RawRecommendation `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(cleaned), &wrapped); err == nil && wrapped.Recommendations != nil {
		return wrapped.Recommendations, nil
	}

	return nil, fmt.Errorf("response is not a recommendations list or an object containing one")
}
