// Package projectspec expands a single recommendation into a rich,
// exportable project specification: a difficulty-scaled description,
// concrete feature list, curated documentation links, and the career
// context explaining why the skills matter.
package projectspec

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/skillbridge/skillbridge/internal/ai"
	"github.com/skillbridge/skillbridge/internal/recommend"
	"github.com/skillbridge/skillbridge/internal/schema"
)

//go:embed prompt_spec.md
var specPromptTemplate string

// Target feature counts per difficulty tier.
var featureTargets = map[schema.DifficultyTier]int{
	schema.DifficultyBeginner:     3,
	schema.DifficultyIntermediate: 5,
	schema.DifficultyAdvanced:     8,
}

const minFeatures = 3

// Generator builds project specs from recommendations.
type Generator struct {
	features  *recommend.FeatureSet
	resources *recommend.ResourceIndex
}

// NewGenerator returns a Generator over the given feature and resource
// catalogs.
func NewGenerator(features *recommend.FeatureSet, resources *recommend.ResourceIndex) *Generator {
	return &Generator{features: features, resources: resources}
}

// Generate expands rec into a full project spec at the given
// difficulty. Providers that can run prompts take the AI path; the
// heuristic provider takes the deterministic path. A model response
// that cannot be interpreted is an error, never a silent downgrade.
func (g *Generator) Generate(ctx context.Context, rec schema.Recommendation, difficulty schema.DifficultyTier, result *schema.AnalysisResult, provider ai.Provider) (*schema.ProjectSpec, error) {
	strengths := make([]string, 0, len(result.Strengths))
	for _, s := range result.Strengths {
		strengths = append(strengths, s.Name)
	}

	// Doc links are always curated, never generated.
	docLinks := g.collectDocLinks(rec.SkillsAddressed)

	if runner, ok := provider.(ai.PromptRunner); ok {
		return g.generateWithModel(ctx, runner, rec, difficulty, result, strengths, docLinks)
	}
	return g.generateHeuristic(rec, difficulty, strengths, docLinks), nil
}

func (g *Generator) collectDocLinks(skills []string) []schema.DocLink {
	var links []schema.DocLink
	for _, skill := range skills {
		for _, entry := range g.resources.For(skill) {
			links = append(links, schema.DocLink{Label: entry.Label, URL: entry.URL, Skill: skill})
		}
	}
	return links
}

// specResponse is the JSON shape expected from the model.
type specResponse struct {
	Description     string   `json:"description"`
	Features        []string `json:"features"`
	WhySkillsMatter string   `json:"why_skills_matter"`
}

func (g *Generator) generateWithModel(ctx context.Context, runner ai.PromptRunner, rec schema.Recommendation, difficulty schema.DifficultyTier, result *schema.AnalysisResult, strengths []string, docLinks []schema.DocLink) (*schema.ProjectSpec, error) {
	gapNames := make([]string, 0, len(result.Gaps))
	for _, gap := range result.Gaps {
		gapNames = append(gapNames, gap.Name)
	}

	prompt := buildSpecPrompt(rec, difficulty, strengths, gapNames)

	raw, err := runner.RunPrompt(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate project spec: %w", err)
	}

	var parsed specResponse
	if err := json.Unmarshal([]byte(ai.ExtractJSON(raw)), &parsed); err != nil {
		return nil, fmt.Errorf("parse project spec response: %w", err)
	}

	if strings.TrimSpace(parsed.Description) == "" {
		return nil, errors.New("project spec response has no description")
	}
	if len(parsed.Features) < minFeatures {
		return nil, fmt.Errorf("project spec response has %d features, need at least %d", len(parsed.Features), minFeatures)
	}

	whySkillsMatter := parsed.WhySkillsMatter
	if whySkillsMatter == "" {
		whySkillsMatter = rec.SkillContext
	}

	return &schema.ProjectSpec{
		Title:               rec.Title,
		Difficulty:          difficulty,
		Description:         parsed.Description,
		Features:            parsed.Features,
		SkillsAddressed:     append([]string{}, rec.SkillsAddressed...),
		WhySkillsMatter:     whySkillsMatter,
		DocLinks:            docLinks,
		StrengthsReferenced: referencedStrengths(parsed.Description, strengths),
	}, nil
}

func buildSpecPrompt(rec schema.Recommendation, difficulty schema.DifficultyTier, strengths, gaps []string) string {
	orNone := func(items []string) string {
		if len(items) == 0 {
			return "None provided"
		}
		return strings.Join(items, ", ")
	}
	skillContext := rec.SkillContext
	if skillContext == "" {
		skillContext = "N/A"
	}

	var b strings.Builder
	b.WriteString(specPromptTemplate)
	b.WriteString("\n\nRecommendation:\n")
	fmt.Fprintf(&b, "  Title: %s\n", rec.Title)
	fmt.Fprintf(&b, "  Description: %s\n", rec.Description)
	fmt.Fprintf(&b, "  Skills addressed: %s\n", strings.Join(rec.SkillsAddressed, ", "))
	fmt.Fprintf(&b, "  Skill context: %s\n\n", skillContext)
	fmt.Fprintf(&b, "Difficulty: %s\n\n", difficulty)
	fmt.Fprintf(&b, "Developer strengths: %s\n", orNone(strengths))
	fmt.Fprintf(&b, "Developer gaps: %s\n", orNone(gaps))
	return b.String()
}

// referencedStrengths returns the strengths actually mentioned in the
// description, preserving strength order.
func referencedStrengths(description string, strengths []string) []string {
	descLower := strings.ToLower(description)
	var referenced []string
	for _, s := range strengths {
		if strings.Contains(descLower, strings.ToLower(s)) {
			referenced = append(referenced, s)
		}
	}
	return referenced
}
