// Package pipeline coordinates the full analysis run as a sequence of
// named stages. Every failure is tagged with the stage that produced
// it, so the CLI can always tell the user where things went wrong.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/skillbridge/skillbridge/internal/ai"
	"github.com/skillbridge/skillbridge/internal/analysis"
	"github.com/skillbridge/skillbridge/internal/input"
	"github.com/skillbridge/skillbridge/internal/recommend"
	"github.com/skillbridge/skillbridge/internal/schema"
	"github.com/skillbridge/skillbridge/internal/taxonomy"
)

// Stage names, in execution order.
const (
	StageProviderResolution = "provider_resolution"
	StageInputAcquisition   = "input_acquisition"
	StageResumeParser       = "resume_parser"
	StageJobParser          = "job_parser"
	StageAIContext          = "ai_context"
	StageAnalysis           = "analysis"
	StageExperience         = "experience"
	StagePortfolio          = "portfolio"
	StageRecommendations    = "recommendations"
	StageResultAssembly     = "result_assembly"
)

// DefaultMaxRecommendations caps the recommendation list when the
// request does not say otherwise.
const DefaultMaxRecommendations = 5

// StageError tags a failure with the stage that produced it.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("[%s] %s", e.Stage, e.Err) }

func (e *StageError) Unwrap() error { return e.Err }

func stageErr(stage string, err error) error {
	return &StageError{Stage: stage, Err: err}
}

// RepoAnalyzer produces a developer context from a GitHub username.
type RepoAnalyzer interface {
	Analyze(ctx context.Context, username string) (*analysis.DeveloperContext, error)
}

// Request carries everything one analysis run needs.
type Request struct {
	JobText    string
	JobURL     string
	GitHubUser string
	ResumeText string

	// Provider selects the AI backend by registry name. NoAI forces
	// the heuristic provider regardless of Provider.
	Provider string
	NoAI     bool

	// Example swaps live inputs for the bundled example data.
	Example bool

	MaxRecommendations int
}

// Notify is called at the start of each stage. Used by the CLI to
// drive the spinner; a nil Notify is fine.
type Notify func(stage string)

// Pipeline wires the engine's components into a run sequence.
type Pipeline struct {
	registry *ai.Registry
	analyzer *analysis.Analyzer
	catalog  *recommend.Catalog
	github   RepoAnalyzer
	logger   *zap.Logger
	notify   Notify
}

// Option adjusts Pipeline construction.
type Option func(*Pipeline)

// WithGitHub attaches the repository analyzer. Required for non-example
// runs.
func WithGitHub(github RepoAnalyzer) Option {
	return func(p *Pipeline) { p.github = github }
}

// WithNotify sets the stage-transition callback.
func WithNotify(notify Notify) Option {
	return func(p *Pipeline) { p.notify = notify }
}

// New builds a Pipeline over the given taxonomy, template catalog, and
// provider registry.
func New(tax *taxonomy.Taxonomy, catalog *recommend.Catalog, registry *ai.Registry, log *zap.Logger, opts ...Option) *Pipeline {
	p := &Pipeline{
		registry: registry,
		analyzer: analysis.NewAnalyzer(tax),
		catalog:  catalog,
		logger:   log,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Pipeline) enter(stage string) time.Time {
	if p.notify != nil {
		p.notify(stage)
	}
	return time.Now()
}

func (p *Pipeline) leave(stage string, started time.Time) {
	p.logger.Debug("stage complete",
		zap.String("stage", stage),
		zap.Duration("took", time.Since(started)),
	)
}

// Run executes the full pipeline and returns a schema-valid analysis
// result.
func (p *Pipeline) Run(ctx context.Context, req Request) (*schema.AnalysisResult, error) {
	maxRecs := req.MaxRecommendations
	if maxRecs < 1 {
		maxRecs = DefaultMaxRecommendations
	}

	// Provider resolution.
	started := p.enter(StageProviderResolution)
	providerName := req.Provider
	if req.NoAI || providerName == "" {
		providerName = ai.ProviderNone
	}
	provider, err := p.registry.Resolve(ctx, providerName)
	if err != nil {
		return nil, stageErr(StageProviderResolution, err)
	}
	p.leave(StageProviderResolution, started)

	// Input acquisition.
	started = p.enter(StageInputAcquisition)
	dev, jobText, err := p.acquireInputs(ctx, req)
	if err != nil {
		return nil, stageErr(StageInputAcquisition, err)
	}
	p.leave(StageInputAcquisition, started)

	// Resume enrichment, only when resume text was supplied.
	if req.ResumeText != "" {
		started = p.enter(StageResumeParser)
		resume, err := input.ParseResume(req.ResumeText)
		if err != nil {
			return nil, stageErr(StageResumeParser, err)
		}
		dev = input.MergeResumeContext(dev, resume)
		p.leave(StageResumeParser, started)
	}

	// Job description parsing.
	started = p.enter(StageJobParser)
	job, err := input.ParseJobDescription(jobText)
	if err != nil {
		return nil, stageErr(StageJobParser, err)
	}
	p.leave(StageJobParser, started)

	// Provider-side context enrichment.
	started = p.enter(StageAIContext)
	dev, err = provider.AnalyzeContext(ctx, dev)
	if err != nil {
		return nil, stageErr(StageAIContext, err)
	}
	p.leave(StageAIContext, started)

	// Core gap classification.
	started = p.enter(StageAnalysis)
	gap := p.analyzer.Analyze(dev, job)
	p.leave(StageAnalysis, started)

	// Experience inference.
	started = p.enter(StageExperience)
	level := analysis.InferExperience(dev)
	p.leave(StageExperience, started)

	// Portfolio insights.
	started = p.enter(StagePortfolio)
	insights := analysis.PortfolioInsights(dev, job)
	p.leave(StagePortfolio, started)

	// Recommendations.
	started = p.enter(StageRecommendations)
	synthesizer := recommend.NewSynthesizer(p.catalog)
	recs, err := synthesizer.Synthesize(ctx, gap, provider, recommend.Options{
		ExperienceLevel:    level,
		MaxRecommendations: maxRecs,
		KnownSkills:        dev.SkillNames(),
		DevContextSummary:  contextSummary(dev),
	})
	if err != nil {
		return nil, stageErr(StageRecommendations, err)
	}
	p.leave(StageRecommendations, started)

	// Result assembly.
	started = p.enter(StageResultAssembly)
	result := &schema.AnalysisResult{
		SchemaVersion:     schema.SchemaVersion,
		Strengths:         gap.Detected,
		Gaps:              append(append([]schema.Skill{}, gap.Missing...), gap.Adjacent...),
		Recommendations:   recs,
		ExperienceLevel:   string(level),
		PortfolioInsights: insights,
		InterviewTopics:   analysis.InterviewTopics(gap),
	}
	p.leave(StageResultAssembly, started)

	return result, nil
}

// acquireInputs resolves the developer context and job text from the
// request: bundled example data, or live GitHub analysis plus pasted
// or fetched job text.
func (p *Pipeline) acquireInputs(ctx context.Context, req Request) (*analysis.DeveloperContext, string, error) {
	if req.Example {
		return exampleDevContext(), exampleJobDescription, nil
	}

	jobText := req.JobText
	if jobText == "" && req.JobURL != "" {
		fetched, err := input.FetchJobText(ctx, req.JobURL)
		if err != nil {
			return nil, "", err
		}
		jobText = fetched
	}
	if jobText == "" {
		return nil, "", fmt.Errorf("no job description provided (--job or --job-url)")
	}
	if req.GitHubUser == "" {
		return nil, "", fmt.Errorf("no github username provided (--github-user)")
	}
	if p.github == nil {
		return nil, "", fmt.Errorf("github analyzer is not configured")
	}

	username, err := input.ValidateGitHubUsername(req.GitHubUser)
	if err != nil {
		return nil, "", err
	}

	dev, err := p.github.Analyze(ctx, username)
	if err != nil {
		return nil, "", err
	}
	return dev, jobText, nil
}

// contextSummary builds the personalization summary handed to the
// provider. A provider-written narrative wins when present.
func contextSummary(dev *analysis.DeveloperContext) string {
	if dev.Summary != "" {
		return dev.Summary
	}

	known := dev.SkillNames()
	if len(known) == 0 {
		return ""
	}

	summary := "Developer knows: " + strings.Join(known, ", ") + "."
	if top := dev.TopLanguage(); top != "" {
		summary += " Strongest language: " + top + "."
	}
	return summary
}
