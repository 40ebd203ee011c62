// Package recommend turns classified skill gaps into project
// recommendations: a pre-authored template catalog ranked by skill
// overlap, plus provider-generated suggestions for whatever the
// catalog does not cover.
package recommend

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/skillbridge/skillbridge/internal/schema"
)

//go:embed templates.yaml
var templatesYAML []byte

// Template is an immutable catalog entry. The catalog is loaded once at
// startup and never mutated.
type Template struct {
	Title           string                `yaml:"title"`
	Description     string                `yaml:"description"`
	SkillsAddressed []string              `yaml:"skills_addressed"`
	EstimatedScope  schema.EstimatedScope `yaml:"estimated_scope"`
	Difficulty      schema.DifficultyTier `yaml:"difficulty"`
	SkillContext    string                `yaml:"skill_context"`
}

// Catalog is the ordered set of shipped templates. Catalog order is the
// tie-break for equal ranking scores.
type Catalog struct {
	templates []Template
}

// LoadCatalog parses the embedded template catalog.
func LoadCatalog() (*Catalog, error) {
	var templates []Template
	if err := yaml.Unmarshal(templatesYAML, &templates); err != nil {
		return nil, fmt.Errorf("parse template catalog: %w", err)
	}

	for i, tpl := range templates {
		if len(tpl.SkillsAddressed) > maxSkillsPerRecommendation {
			templates[i].SkillsAddressed = tpl.SkillsAddressed[:maxSkillsPerRecommendation]
		}
		if !schema.ValidScope(tpl.EstimatedScope) {
			templates[i].EstimatedScope = schema.ScopeMedium
		}
	}

	return &Catalog{templates: templates}, nil
}

// CatalogFromTemplates builds a catalog from caller-supplied entries.
// Used by tests that need a controlled catalog.
func CatalogFromTemplates(templates []Template) *Catalog {
	return &Catalog{templates: templates}
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.templates)
}
