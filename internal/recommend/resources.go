package recommend

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed resources.yaml
var resourcesYAML []byte

// ResourceLink is one curated documentation link for a skill.
type ResourceLink struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// ResourceIndex maps skill names to curated documentation links.
// Links are hand-picked, never generated. Lookups are case-insensitive.
type ResourceIndex struct {
	links map[string][]ResourceLink
	lower map[string]string
}

// LoadResources parses the embedded documentation link data.
func LoadResources() (*ResourceIndex, error) {
	var raw map[string][]ResourceLink
	if err := yaml.Unmarshal(resourcesYAML, &raw); err != nil {
		return nil, fmt.Errorf("parse doc resources: %w", err)
	}

	idx := &ResourceIndex{
		links: raw,
		lower: make(map[string]string, len(raw)),
	}
	for name := range raw {
		idx.lower[strings.ToLower(name)] = name
	}
	return idx, nil
}

// For returns documentation links for a skill, or nil when none are
// curated for it.
func (r *ResourceIndex) For(skill string) []ResourceLink {
	canonical, ok := r.lower[strings.ToLower(skill)]
	if !ok {
		return nil
	}
	links := r.links[canonical]
	out := make([]ResourceLink, len(links))
	copy(out, links)
	return out
}
