// Package ai defines the pluggable provider contract for final-mile
// recommendation generation, the provider registry, and the shared
// response parsing helpers. AI is restricted to interpretation and
// recommendation; it never performs repository parsing or core analysis.
package ai

import (
	"context"

	"github.com/skillbridge/skillbridge/internal/analysis"
	"github.com/skillbridge/skillbridge/internal/schema"
)

// GapPayload is the classified gap handed to a provider for generation.
type GapPayload struct {
	MissingSkills     []schema.Skill `json:"missing_skills"`
	AdjacentSkills    []schema.Skill `json:"adjacent_skills"`
	ExperienceLevel   string         `json:"experience_level,omitempty"`
	KnownSkills       []string       `json:"known_skills,omitempty"`
	DevContextSummary string         `json:"dev_context_summary,omitempty"`
}

// RawRecommendation is a provider response item before the synthesizer
// enforces shape invariants.
type RawRecommendation struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	SkillsAddressed []string `json:"skills_addressed"`
	EstimatedScope  string   `json:"estimated_scope"`
	SkillContext    string   `json:"skill_context,omitempty"`
}

// Provider is the two-operation contract every backend implements.
// AnalyzeContext returns the input unchanged when the provider performs
// no enrichment. GenerateRecommendations turns a classified gap into
// raw recommendation items.
type Provider interface {
	Name() string
	AnalyzeContext(ctx context.Context, dev *analysis.DeveloperContext) (*analysis.DeveloperContext, error)
	GenerateRecommendations(ctx context.Context, gaps *GapPayload) ([]RawRecommendation, error)
}

// PromptRunner is an optional provider capability: running a
// caller-assembled prompt verbatim. Backends that talk to a model
// implement it; the heuristic provider does not.
type PromptRunner interface {
	RunPrompt(ctx context.Context, prompt string) (string, error)
}
