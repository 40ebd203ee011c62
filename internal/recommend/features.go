package recommend

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/skillbridge/skillbridge/internal/schema"
)

//go:embed features.yaml
var featuresYAML []byte

// FeatureSet maps skill names to per-difficulty feature suggestions.
// Lookups are case-insensitive.
type FeatureSet struct {
	byTier map[string]map[schema.DifficultyTier][]string
	lower  map[string]string
}

// LoadFeatures parses the embedded skill feature data.
func LoadFeatures() (*FeatureSet, error) {
	var raw map[string]map[schema.DifficultyTier][]string
	if err := yaml.Unmarshal(featuresYAML, &raw); err != nil {
		return nil, fmt.Errorf("parse skill features: %w", err)
	}

	fs := &FeatureSet{
		byTier: raw,
		lower:  make(map[string]string, len(raw)),
	}
	for name := range raw {
		fs.lower[strings.ToLower(name)] = name
	}
	return fs, nil
}

// For returns feature suggestions for a skill at a difficulty tier, or
// nil when the skill or tier has no curated entries.
func (f *FeatureSet) For(skill string, difficulty schema.DifficultyTier) []string {
	canonical, ok := f.lower[strings.ToLower(skill)]
	if !ok {
		return nil
	}
	features := f.byTier[canonical][difficulty]
	out := make([]string, len(features))
	copy(out, features)
	return out
}
