package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillbridge/skillbridge/internal/ai"
	"github.com/skillbridge/skillbridge/internal/analysis"
	"github.com/skillbridge/skillbridge/internal/schema"
)

// stubProvider records every payload it receives and replies with one
// canned recommendation per batch.
type stubProvider struct {
	payloads []*ai.GapPayload
	items    []ai.RawRecommendation
	err      error
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) AnalyzeContext(_ context.Context, dev *analysis.DeveloperContext) (*analysis.DeveloperContext, error) {
	return dev, nil
}

func (s *stubProvider) GenerateRecommendations(_ context.Context, gaps *ai.GapPayload) ([]ai.RawRecommendation, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.payloads = append(s.payloads, gaps)
	if s.items != nil {
		return s.items, nil
	}
	names := make([]string, 0, len(gaps.MissingSkills))
	for _, sk := range gaps.MissingSkills {
		names = append(names, sk.Name)
	}
	return []ai.RawRecommendation{{
		Title:           "Stub project",
		Description:     "stub",
		SkillsAddressed: names,
		EstimatedScope:  "medium",
	}}, nil
}

func gapOf(missing, adjacent []string) *analysis.GapResult {
	gap := &analysis.GapResult{}
	for _, m := range missing {
		gap.Missing = append(gap.Missing, schema.Skill{Name: m})
	}
	for _, a := range adjacent {
		gap.Adjacent = append(gap.Adjacent, schema.Skill{Name: a})
	}
	return gap
}

func TestSynthesizeTemplatesFirst(t *testing.T) {
	catalog := CatalogFromTemplates([]Template{{
		Title:           "Containerized API",
		Description:     "Ship a containerized service.",
		SkillsAddressed: []string{"Docker", "Kubernetes"},
		EstimatedScope:  schema.ScopeMedium,
		Difficulty:      schema.DifficultyIntermediate,
	}})
	s := NewSynthesizer(catalog)
	provider := &stubProvider{}

	recs, err := s.Synthesize(context.Background(), gapOf([]string{"Docker", "Kubernetes", "Kafka"}, nil), provider, Options{
		ExperienceLevel:    schema.LevelMid,
		MaxRecommendations: 5,
	})

	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "Containerized API", recs[0].Title)
	assert.Equal(t, "Stub project", recs[1].Title)

	// Only the residual skill reaches the provider.
	require.Len(t, provider.payloads, 1)
	require.Len(t, provider.payloads[0].MissingSkills, 1)
	assert.Equal(t, "Kafka", provider.payloads[0].MissingSkills[0].Name)
}

func TestSynthesizeResidualBatching(t *testing.T) {
	s := NewSynthesizer(CatalogFromTemplates(nil))
	provider := &stubProvider{}

	recs, err := s.Synthesize(context.Background(),
		gapOf([]string{"A", "B", "C", "D"}, []string{"E"}), provider, Options{
			ExperienceLevel:    schema.LevelMid,
			MaxRecommendations: 5,
		})

	require.NoError(t, err)
	require.Len(t, provider.payloads, 2)
	assert.Len(t, provider.payloads[0].MissingSkills, 3)
	assert.Len(t, provider.payloads[1].MissingSkills, 2)
	assert.Equal(t, "E", provider.payloads[1].MissingSkills[1].Name)
	assert.Len(t, recs, 2)
}

func TestSynthesizePassesPersonalization(t *testing.T) {
	s := NewSynthesizer(CatalogFromTemplates(nil))
	provider := &stubProvider{}

	_, err := s.Synthesize(context.Background(), gapOf([]string{"Kafka"}, nil), provider, Options{
		ExperienceLevel:    schema.LevelSenior,
		MaxRecommendations: 3,
		KnownSkills:        []string{"Python", "Docker"},
		DevContextSummary:  "Backend-heavy portfolio.",
	})

	require.NoError(t, err)
	require.Len(t, provider.payloads, 1)
	assert.Equal(t, "senior", provider.payloads[0].ExperienceLevel)
	assert.Equal(t, []string{"Python", "Docker"}, provider.payloads[0].KnownSkills)
	assert.Equal(t, "Backend-heavy portfolio.", provider.payloads[0].DevContextSummary)
}

func TestSynthesizeShapeInvariants(t *testing.T) {
	s := NewSynthesizer(CatalogFromTemplates(nil))
	provider := &stubProvider{items: []ai.RawRecommendation{{
		Title:           "Oversized",
		SkillsAddressed: []string{"A", "B", "C", "D", "E"},
		EstimatedScope:  "Gigantic",
	}}}

	recs, err := s.Synthesize(context.Background(), gapOf([]string{"A"}, nil), provider, Options{
		MaxRecommendations: 3,
	})

	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Len(t, recs[0].SkillsAddressed, 3)
	assert.Equal(t, schema.ScopeMedium, recs[0].EstimatedScope)
}

func TestSynthesizeScopeNormalized(t *testing.T) {
	s := NewSynthesizer(CatalogFromTemplates(nil))
	provider := &stubProvider{items: []ai.RawRecommendation{{
		Title:          "Cased",
		EstimatedScope: "  Large ",
	}}}

	recs, err := s.Synthesize(context.Background(), gapOf([]string{"A"}, nil), provider, Options{
		MaxRecommendations: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, schema.ScopeLarge, recs[0].EstimatedScope)
}

func TestSynthesizeCapsTotal(t *testing.T) {
	s := NewSynthesizer(CatalogFromTemplates(nil))
	provider := &stubProvider{items: []ai.RawRecommendation{
		{Title: "one"}, {Title: "two"}, {Title: "three"},
	}}

	recs, err := s.Synthesize(context.Background(), gapOf([]string{"A", "B", "C"}, nil), provider, Options{
		MaxRecommendations: 2,
	})

	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestSynthesizeProviderErrorPropagates(t *testing.T) {
	s := NewSynthesizer(CatalogFromTemplates(nil))
	boom := errors.New("model unavailable")
	provider := &stubProvider{err: boom}

	_, err := s.Synthesize(context.Background(), gapOf([]string{"A"}, nil), provider, Options{
		MaxRecommendations: 3,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "provider stub")
}

func TestSynthesizeNoResidualSkipsProvider(t *testing.T) {
	catalog := CatalogFromTemplates([]Template{{
		Title:           "Covers all",
		SkillsAddressed: []string{"Docker"},
		EstimatedScope:  schema.ScopeSmall,
		Difficulty:      schema.DifficultyBeginner,
	}})
	s := NewSynthesizer(catalog)
	provider := &stubProvider{err: errors.New("must not be called")}

	recs, err := s.Synthesize(context.Background(), gapOf([]string{"Docker"}, nil), provider, Options{
		MaxRecommendations: 5,
	})

	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Covers all", recs[0].Title)
}
