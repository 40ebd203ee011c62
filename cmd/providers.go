package cmd

import (
	"context"

	"go.uber.org/zap"

	"github.com/skillbridge/skillbridge/internal/ai"
	"github.com/skillbridge/skillbridge/internal/ai/anthropic"
	"github.com/skillbridge/skillbridge/internal/ai/gemini"
	"github.com/skillbridge/skillbridge/internal/ai/ollama"
	"github.com/skillbridge/skillbridge/internal/ai/openai"
	"github.com/skillbridge/skillbridge/internal/secrets"
)

// buildRegistry wires every AI backend into a registry. Factories are
// lazy: keys are only resolved for the provider actually selected.
func buildRegistry(config *Config, log *zap.Logger) *ai.Registry {
	registry := ai.NewRegistry()

	registry.Register(ai.ProviderGemini, func(ctx context.Context) (ai.Provider, error) {
		cfg := config.geminiConfig()
		apiKey, err := secrets.Load(secrets.Source{
			Name:  "gemini api key",
			Value: cfg.APIKey,
			File:  cfg.APIKeyFile,
			Env:   "GEMINI_API_KEY",
		})
		if err != nil {
			return nil, err
		}
		return gemini.New(ctx, apiKey, cfg.Model, log)
	})

	registry.Register(ai.ProviderOpenAI, func(_ context.Context) (ai.Provider, error) {
		cfg := config.openAIConfig()
		apiKey, err := secrets.Load(secrets.Source{
			Name:  "openai api key",
			Value: cfg.APIKey,
			File:  cfg.APIKeyFile,
			Env:   "OPENAI_API_KEY",
		})
		if err != nil {
			return nil, err
		}
		return openai.New(apiKey, cfg.Model, cfg.BaseURL, log)
	})

	registry.Register(ai.ProviderAnthropic, func(_ context.Context) (ai.Provider, error) {
		cfg := config.anthropicConfig()
		apiKey, err := secrets.Load(secrets.Source{
			Name:  "anthropic api key",
			Value: cfg.APIKey,
			File:  cfg.APIKeyFile,
			Env:   "ANTHROPIC_API_KEY",
		})
		if err != nil {
			return nil, err
		}
		return anthropic.New(apiKey, cfg.Model, cfg.BaseURL, log)
	})

	registry.Register(ai.ProviderOllama, func(ctx context.Context) (ai.Provider, error) {
		cfg := config.ollamaConfig()
		return ollama.New(ctx, cfg.BaseURL, cfg.Model, log)
	})

	return registry
}

// githubToken resolves the GitHub token from config, file, or
// environment. An empty token is valid: unauthenticated access works
// with lower rate limits.
func githubToken(config *Config) (string, error) {
	cfg := config.GitHub
	if cfg == nil {
		cfg = &GitHubConfig{}
	}
	return secrets.LoadOptional(secrets.Source{
		Name:  "github token",
		Value: cfg.Token,
		File:  cfg.TokenFile,
		Env:   "GITHUB_TOKEN",
	})
}

func (c *Config) geminiConfig() GeminiConfig {
	if c.AI == nil || c.AI.Gemini == nil {
		return GeminiConfig{}
	}
	return *c.AI.Gemini
}

func (c *Config) openAIConfig() OpenAIConfig {
	if c.AI == nil || c.AI.OpenAI == nil {
		return OpenAIConfig{}
	}
	return *c.AI.OpenAI
}

func (c *Config) anthropicConfig() AnthropicConfig {
	if c.AI == nil || c.AI.Anthropic == nil {
		return AnthropicConfig{}
	}
	return *c.AI.Anthropic
}

func (c *Config) ollamaConfig() OllamaConfig {
	if c.AI == nil || c.AI.Ollama == nil {
		return OllamaConfig{}
	}
	return *c.AI.Ollama
}
