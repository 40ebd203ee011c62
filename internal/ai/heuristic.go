package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/skillbridge/skillbridge/internal/analysis"
	"github.com/skillbridge/skillbridge/internal/schema"
)

const heuristicBatchSize = 3

// Heuristic is the deterministic fallback provider. It requires no API
// keys, performs no network I/O, and always produces the same output
// for the same input.
type Heuristic struct{}

// NewHeuristic returns the heuristic provider.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

func (h *Heuristic) Name() string { return ProviderNone }

// AnalyzeContext returns the context unchanged.
func (h *Heuristic) AnalyzeContext(_ context.Context, dev *analysis.DeveloperContext) (*analysis.DeveloperContext, error) {
	return dev, nil
}

// GenerateRecommendations groups missing and adjacent skills into
// batches of up to three and builds one project suggestion per batch.
func (h *Heuristic) GenerateRecommendations(_ context.Context, gaps *GapPayload) ([]RawRecommendation, error) {
	names := make([]string, 0, len(gaps.MissingSkills)+len(gaps.AdjacentSkills))
	for _, s := range gaps.MissingSkills {
		names = append(names, s.Name)
	}
	for _, s := range gaps.AdjacentSkills {
		names = append(names, s.Name)
	}

	known := make(map[string]struct{}, len(gaps.KnownSkills))
	for _, s := range gaps.KnownSkills {
		known[strings.ToLower(s)] = struct{}{}
	}

	var recs []RawRecommendation
	for start := 0; start < len(names); start += heuristicBatchSize {
		end := start + heuristicBatchSize
		if end > len(names) {
			end = len(names)
		}
		recs = append(recs, makeRecommendation(names[start:end], known))
	}

	return recs, nil
}

func makeRecommendation(skills []string, known map[string]struct{}) RawRecommendation {
	joined := joinSkills(skills)

	var desc string
	if len(skills) == 1 {
		desc = fmt.Sprintf(
			"Create a small, focused project that demonstrates your ability to work with %s. "+
				"Choose a realistic use case that produces a deployable or shareable result for your portfolio.",
			skills[0],
		)
	} else {
		desc = fmt.Sprintf(
			"Create a project that combines %s. Pick a realistic scenario that lets you demonstrate "+
				"each technology in context, producing a deployable or shareable portfolio piece.",
			joined,
		)
	}

	// Personalize when any batch skill overlaps the caller's known set.
	if overlap := knownOverlap(skills, known); len(overlap) > 0 {
		desc += fmt.Sprintf(
			" You already have experience with %s, which gives you a head start here.",
			joinSkills(overlap),
		)
	} else if len(known) > 0 {
		desc += " These skills are new territory for you, so start with a minimal version and iterate."
	}

	scope := schema.ScopeMedium
	if len(skills) == 1 {
		scope = schema.ScopeSmall
	}

	return RawRecommendation{
		Title:           fmt.Sprintf("Build a project using %s", joined),
		Description:     desc,
		SkillsAddressed: skills,
		EstimatedScope:  string(scope),
	}
}

func knownOverlap(skills []string, known map[string]struct{}) []string {
	var overlap []string
	for _, s := range skills {
		if _, ok := known[strings.ToLower(s)]; ok {
			overlap = append(overlap, s)
		}
	}
	return overlap
}

func joinSkills(skills []string) string {
	if len(skills) == 0 {
		return ""
	}
	if len(skills) == 1 {
		return skills[0]
	}
	return strings.Join(skills[:len(skills)-1], ", ") + " and " + skills[len(skills)-1]
}
