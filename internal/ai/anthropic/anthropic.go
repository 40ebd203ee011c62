// Package anthropic implements the ai.Provider contract on top of the
// Anthropic Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.uber.org/zap"

	"github.com/skillbridge/skillbridge/internal/ai"
	"github.com/skillbridge/skillbridge/internal/analysis"
	"github.com/skillbridge/skillbridge/internal/logger"
)

const (
	defaultModel = "claude-sonnet-4-5-20250929"
	maxTokens    = 4096
)

const systemPrompt = "You are a career advisor for software developers. " +
	"Follow the response format instructions in the user message exactly."

// Provider is the Anthropic-backed AI provider.
type Provider struct {
	client anthropic.Client
	model  string
	logger *zap.Logger
}

// New creates a Provider for the Anthropic API. baseURL may be empty
// for the default endpoint.
func New(apiKey, model, baseURL string, log *zap.Logger) (*Provider, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("anthropic api key is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	return &Provider{client: anthropic.NewClient(opts...), model: model, logger: log}, nil
}

func (p *Provider) Name() string { return ai.ProviderAnthropic }

// AnalyzeContext asks the model for a short narrative summary of the
// developer context and attaches it to the context.
func (p *Provider) AnalyzeContext(ctx context.Context, dev *analysis.DeveloperContext) (*analysis.DeveloperContext, error) {
	prompt, err := ai.BuildContextPrompt(dev)
	if err != nil {
		return nil, err
	}

	summary, err := p.chat(ctx, prompt)
	if err != nil {
		return nil, err
	}

	enriched := *dev
	enriched.Summary = strings.TrimSpace(summary)
	return &enriched, nil
}

// GenerateRecommendations sends the gap payload to the model and parses
// the response as a recommendations list.
func (p *Provider) GenerateRecommendations(ctx context.Context, gaps *ai.GapPayload) ([]ai.RawRecommendation, error) {
	prompt, err := ai.BuildRecommendationPrompt(gaps)
	if err != nil {
		return nil, err
	}

	raw, err := p.chat(ctx, prompt)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("anthropic messages response",
		zap.String("model", p.model),
		zap.String("response_preview", logger.TruncateForLog(raw, 200)),
	)

	recs, err := ai.ParseRecommendations(raw)
	if err != nil {
		return nil, fmt.Errorf("parse anthropic response: %w", err)
	}
	return recs, nil
}

// RunPrompt sends a caller-assembled prompt and returns the raw model
// text.
func (p *Provider) RunPrompt(ctx context.Context, prompt string) (string, error) {
	return p.chat(ctx, prompt)
}

func (p *Provider) chat(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: maxTokens,
		System: []anthropic.TextBlockParam{
			{Type: "text", Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic messages: %w", err)
	}

	var b strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}

	content := strings.TrimSpace(b.String())
	if content == "" {
		return "", errors.New("anthropic api returned empty response")
	}

	return content, nil
}
