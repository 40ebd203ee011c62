// Package gemini implements the ai.Provider contract on top of the
// Google GenAI API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/skillbridge/skillbridge/internal/ai"
	"github.com/skillbridge/skillbridge/internal/analysis"
	"github.com/skillbridge/skillbridge/internal/logger"
)

const defaultModel = "gemini-2.0-flash"

const defaultMaxLogLength = 200

// Provider is the Gemini-backed AI provider.
type Provider struct {
	client    *genai.Client
	modelName string
	logger    *zap.Logger
	maxLogLen int
}

// New creates a Provider configured for the Gemini API backend.
func New(ctx context.Context, apiKey, model string, log *zap.Logger) (*Provider, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	return &Provider{
		client:    client,
		modelName: model,
		logger:    log,
		maxLogLen: defaultMaxLogLength,
	}, nil
}

func (p *Provider) Name() string { return ai.ProviderGemini }

// AnalyzeContext asks the model for a short narrative summary of the
// developer context and attaches it to the context.
func (p *Provider) AnalyzeContext(ctx context.Context, dev *analysis.DeveloperContext) (*analysis.DeveloperContext, error) {
	prompt, err := ai.BuildContextPrompt(dev)
	if err != nil {
		return nil, err
	}

	summary, err := p.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	enriched := *dev
	enriched.Summary = strings.TrimSpace(summary)
	return &enriched, nil
}

// GenerateRecommendations sends the gap payload to Gemini and parses
// the response as a recommendations list.
func (p *Provider) GenerateRecommendations(ctx context.Context, gaps *ai.GapPayload) ([]ai.RawRecommendation, error) {
	prompt, err := ai.BuildRecommendationPrompt(gaps)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("gemini generate content request",
		zap.String("model", p.modelName),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt, p.maxLogLen)),
	)

	raw, err := p.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("gemini generate content response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, p.maxLogLen)),
	)

	recs, err := ai.ParseRecommendations(raw)
	if err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}
	return recs, nil
}

// RunPrompt sends a caller-assembled prompt and returns the raw model
// text. Used by callers that build their own prompts, like project
// spec generation.
func (p *Provider) RunPrompt(ctx context.Context, prompt string) (string, error) {
	return p.generate(ctx, prompt)
}

func (p *Provider) generate(ctx context.Context, prompt string) (string, error) {
	if p == nil || p.client == nil {
		return "", errors.New("gemini provider is not initialized")
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt must not be empty")
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.modelName, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", errors.New("gemini api returned empty response")
	}

	return output, nil
}

// Model returns the configured model name.
func (p *Provider) Model() string {
	if p == nil {
		return ""
	}
	return p.modelName
}
