// Package ollama implements the ai.Provider contract against a local
// Ollama instance. No data leaves the machine.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/skillbridge/skillbridge/internal/ai"
	"github.com/skillbridge/skillbridge/internal/analysis"
)

const (
	defaultBaseURL = "http://localhost:11434"
	defaultModel   = "llama3.2"

	checkTimeout = 5 * time.Second
	chatTimeout  = 120 * time.Second
)

// Provider is the Ollama-backed AI provider.
type Provider struct {
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *zap.Logger
}

// New creates a Provider and verifies the Ollama server is reachable.
func New(ctx context.Context, baseURL, model string, log *zap.Logger) (*Provider, error) {
	if baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/"); baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	p := &Provider{
		baseURL:    baseURL,
		model:      model,
		httpClient: &http.Client{Timeout: chatTimeout},
		logger:     log,
	}

	if err := p.checkServer(ctx); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Provider) Name() string { return ai.ProviderOllama }

func (p *Provider) checkServer(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL, nil)
	if err != nil {
		return err
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("cannot reach ollama at %s (is it running?): %w", p.baseURL, err)
	}
	defer resp.Body.Close()

	return nil
}

// AnalyzeContext asks the local model for a short narrative summary of
// the developer context.
func (p *Provider) AnalyzeContext(ctx context.Context, dev *analysis.DeveloperContext) (*analysis.DeveloperContext, error) {
	prompt, err := ai.BuildContextPrompt(dev)
	if err != nil {
		return nil, err
	}

	summary, err := p.chat(ctx, prompt, false)
	if err != nil {
		return nil, err
	}

	enriched := *dev
	enriched.Summary = strings.TrimSpace(summary)
	return &enriched, nil
}

// GenerateRecommendations sends the gap payload to the local model and
// parses the response as a recommendations list.
func (p *Provider) GenerateRecommendations(ctx context.Context, gaps *ai.GapPayload) ([]ai.RawRecommendation, error) {
	prompt, err := ai.BuildRecommendationPrompt(gaps)
	if err != nil {
		return nil, err
	}

	raw, err := p.chat(ctx, prompt, true)
	if err != nil {
		return nil, err
	}

	recs, err := ai.ParseRecommendations(raw)
	if err != nil {
		return nil, fmt.Errorf("parse ollama response: %w", err)
	}
	return recs, nil
}

// RunPrompt sends a caller-assembled prompt and returns the raw model
// text, requested in JSON mode.
func (p *Provider) RunPrompt(ctx context.Context, prompt string) (string, error) {
	return p.chat(ctx, prompt, true)
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Format   string        `json:"format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Message chatMessage `json:"message"`
}

func (p *Provider) chat(ctx context.Context, prompt string, jsonFormat bool) (string, error) {
	payload := chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		Stream: false,
	}
	if jsonFormat {
		payload.Format = "json"
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	p.logger.Debug("ollama chat request", zap.String("model", p.model), zap.String("url", req.URL.String()))

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("connect to ollama: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama returned bad status: %s", resp.Status)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode ollama response: %w", err)
	}

	return parsed.Message.Content, nil
}
