// Package openai implements the ai.Provider contract on top of the
// OpenAI chat completions API.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"go.uber.org/zap"

	"github.com/skillbridge/skillbridge/internal/ai"
	"github.com/skillbridge/skillbridge/internal/analysis"
	"github.com/skillbridge/skillbridge/internal/logger"
)

const defaultModel = "gpt-4o-mini"

const systemPrompt = "You are a career advisor for software developers. " +
	"Follow the response format instructions in the user message exactly."

// Provider is the OpenAI-backed AI provider.
type Provider struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// New creates a Provider for the OpenAI API. baseURL may be empty for
// the default endpoint.
func New(apiKey, model, baseURL string, log *zap.Logger) (*Provider, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("openai api key is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	client := openai.NewClient(opts...)

	return &Provider{client: &client, model: model, logger: log}, nil
}

func (p *Provider) Name() string { return ai.ProviderOpenAI }

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

	p.logger.Debug("openai chat response",
		zap.String("model", p.model),
		zap.String("response_preview", logger.TruncateForLog(raw, 200)),
	)

	recs, err := ai.ParseRecommendations(raw)
	if err != nil {
		return nil, fmt.Errorf("parse openai response: %w", err)
	}
	return recs, nil
}

// RunPrompt sends a caller-assembled prompt and returns the raw model
// text.
func (p *Provider) RunPrompt(ctx context.Context, prompt string) (string, error) {
	return p.chat(ctx, prompt)
}

func (p *Provider) chat(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: p.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("openai api returned no choices")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", errors.New("openai api returned empty response")
	}

	return content, nil
}
