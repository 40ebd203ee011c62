package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolioInsightsBalance(t *testing.T) {
	dev := &DeveloperContext{
		Languages: []LanguageSignal{{Name: "Python", Percentage: 100}},
	}
	insights := PortfolioInsights(dev, &JobRequirements{})

	require.NotEmpty(t, insights)
	assert.Equal(t, "balance", insights[0].Category)
	assert.Contains(t, insights[0].Message, "languages")
	assert.Contains(t, insights[0].Message, "frameworks, infrastructure")
}

func TestPortfolioInsightsInfraGap(t *testing.T) {
	dev := &DeveloperContext{
		Languages:  []LanguageSignal{{Name: "Python", Percentage: 60}},
		Frameworks: []Signal{{Name: "Django"}},
	}
	job := &JobRequirements{RequiredTechnologies: []string{"Docker", "Python"}}

	insights := PortfolioInsights(dev, job)

	require.Len(t, insights, 1)
	assert.Equal(t, "infrastructure", insights[0].Category)
}

func TestPortfolioInsightsMissingDomains(t *testing.T) {
	dev := &DeveloperContext{
		Languages:             []LanguageSignal{{Name: "Go", Percentage: 100}},
		Frameworks:            []Signal{{Name: "gRPC"}},
		InfrastructureSignals: []Signal{{Name: "Docker"}},
	}
	job := &JobRequirements{
		ExperienceDomains: []string{"fintech", "healthcare"},
	}

	insights := PortfolioInsights(dev, job)

	require.Len(t, insights, 1)
	assert.Equal(t, "domain", insights[0].Category)
	assert.Contains(t, insights[0].Message, "fintech, healthcare")
	assert.Contains(t, insights[0].Message, "these domains")
}

func TestPortfolioInsightsSingleDomainNoun(t *testing.T) {
	dev := &DeveloperContext{
		Languages:             []LanguageSignal{{Name: "Go", Percentage: 100}},
		Frameworks:            []Signal{{Name: "gRPC"}},
		InfrastructureSignals: []Signal{{Name: "Docker"}},
	}
	job := &JobRequirements{ExperienceDomains: []string{"e-commerce"}}

	insights := PortfolioInsights(dev, job)
	require.Len(t, insights, 1)
	assert.Contains(t, insights[0].Message, "this domain")
}

func TestPortfolioInsightsDepth(t *testing.T) {
	dev := &DeveloperContext{
		Languages: []LanguageSignal{
			{Name: "Python", Percentage: 80},
			{Name: "JavaScript", Percentage: 5},
			{Name: "Shell", Percentage: 5},
			{Name: "HTML", Percentage: 5},
			{Name: "CSS", Percentage: 5},
		},
		Frameworks:            []Signal{{Name: "Django"}},
		InfrastructureSignals: []Signal{{Name: "Docker"}},
	}

	insights := PortfolioInsights(dev, &JobRequirements{})

	require.Len(t, insights, 1)
	assert.Equal(t, "depth", insights[0].Category)
}

func TestPortfolioInsightsCappedAtThree(t *testing.T) {
	dev := &DeveloperContext{
		Languages: []LanguageSignal{
			{Name: "Python", Percentage: 80},
			{Name: "JavaScript", Percentage: 5},
			{Name: "Shell", Percentage: 5},
			{Name: "HTML", Percentage: 5},
			{Name: "CSS", Percentage: 5},
		},
	}
	job := &JobRequirements{
		RequiredTechnologies: []string{"Kubernetes"},
		ExperienceDomains:    []string{"fintech"},
	}

	insights := PortfolioInsights(dev, job)
	assert.LessOrEqual(t, len(insights), 3)
}

func TestPortfolioInsightsCoveredDomainSkipped(t *testing.T) {
	dev := &DeveloperContext{
		Languages:             []LanguageSignal{{Name: "Go", Percentage: 100}},
		Frameworks:            []Signal{{Name: "gRPC"}},
		InfrastructureSignals: []Signal{{Name: "Docker"}},
		ResumeSkills:          []string{"Fintech"},
	}
	job := &JobRequirements{ExperienceDomains: []string{"fintech"}}

	assert.Empty(t, PortfolioInsights(dev, job))
}
