package recommend

import (
	"context"
	"fmt"
	"strings"

	"github.com/skillbridge/skillbridge/internal/ai"
	"github.com/skillbridge/skillbridge/internal/analysis"
	"github.com/skillbridge/skillbridge/internal/schema"
)

const (
	maxSkillsPerRecommendation = 3
	residualBatchSize          = 3
)

// Options tunes a synthesis run.
type Options struct {
	ExperienceLevel schema.ExperienceLevel
	// MaxRecommendations caps the final list. Values < 1 mean 1.
	MaxRecommendations int
	// KnownSkills personalizes provider output against what the
	// developer already demonstrates.
	KnownSkills []string
	// DevContextSummary is an optional narrative handed to the provider.
	DevContextSummary string
}

// Synthesizer builds the final recommendation list from a classified
// gap: matched catalog templates first, then provider-generated
// suggestions for the residual skills no template covers.
type Synthesizer struct {
	catalog *Catalog
}

// NewSynthesizer returns a Synthesizer over catalog.
func NewSynthesizer(catalog *Catalog) *Synthesizer {
	return &Synthesizer{catalog: catalog}
}

// Synthesize runs the two-phase construction. Shape invariants are
// enforced on every output item regardless of where it came from:
// at most 3 skills, a valid scope (medium when unrecognized), and the
// overall cap. A provider payload that cannot be interpreted is an
// error, never silently dropped.
func (s *Synthesizer) Synthesize(ctx context.Context, gap *analysis.GapResult, provider ai.Provider, opts Options) ([]schema.Recommendation, error) {
	maxRecs := opts.MaxRecommendations
	if maxRecs < 1 {
		maxRecs = 1
	}

	gapNames := gap.GapNames()

	// Template phase.
	matched := s.catalog.Select(gapNames, opts.ExperienceLevel, maxRecs)

	covered := make(map[string]struct{})
	recs := make([]schema.Recommendation, 0, maxRecs)
	for _, tpl := range matched {
		for _, skill := range tpl.SkillsAddressed {
			covered[strings.ToLower(skill)] = struct{}{}
		}
		recs = append(recs, schema.Recommendation{
			Title:           tpl.Title,
			Description:     tpl.Description,
			SkillsAddressed: capSkills(tpl.SkillsAddressed),
			EstimatedScope:  coerceScope(string(tpl.EstimatedScope)),
			SkillContext:    tpl.SkillContext,
		})
	}

	// Residual phase: skills no matched template covers, batched in
	// encounter order (missing first, then adjacent).
	residual := residualSkills(gap, covered)
	for start := 0; start < len(residual) && len(recs) < maxRecs; start += residualBatchSize {
		end := start + residualBatchSize
		if end > len(residual) {
			end = len(residual)
		}

		raw, err := provider.GenerateRecommendations(ctx, &ai.GapPayload{
			MissingSkills:     residual[start:end],
			ExperienceLevel:   string(opts.ExperienceLevel),
			KnownSkills:       opts.KnownSkills,
			DevContextSummary: opts.DevContextSummary,
		})
		if err != nil {
			return nil, fmt.Errorf("provider %s: %w", provider.Name(), err)
		}

		for _, item := range raw {
			if len(recs) >= maxRecs {
				break
			}
			recs = append(recs, fromRaw(item))
		}
	}

	if len(recs) > maxRecs {
		recs = recs[:maxRecs]
	}
	return recs, nil
}

func residualSkills(gap *analysis.GapResult, covered map[string]struct{}) []schema.Skill {
	var residual []schema.Skill
	for _, s := range append(append([]schema.Skill{}, gap.Missing...), gap.Adjacent...) {
		if _, ok := covered[strings.ToLower(s.Name)]; !ok {
			residual = append(residual, s)
		}
	}
	return residual
}

func fromRaw(item ai.RawRecommendation) schema.Recommendation {
	return schema.Recommendation{
		Title:           item.Title,
		Description:     item.Description,
		SkillsAddressed: capSkills(item.SkillsAddressed),
		EstimatedScope:  coerceScope(item.EstimatedScope),
		SkillContext:    item.SkillContext,
	}
}

func capSkills(skills []string) []string {
	if len(skills) > maxSkillsPerRecommendation {
		skills = skills[:maxSkillsPerRecommendation]
	}
	out := make([]string, len(skills))
	copy(out, skills)
	return out
}

func coerceScope(raw string) schema.EstimatedScope {
	scope := schema.EstimatedScope(strings.ToLower(strings.TrimSpace(raw)))
	if !schema.ValidScope(scope) {
		return schema.ScopeMedium
	}
	return scope
}
