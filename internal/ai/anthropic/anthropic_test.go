package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/skillbridge/skillbridge/internal/ai"
	"github.com/skillbridge/skillbridge/internal/schema"
)

// newTestProvider points the client at a local fake of the Messages
// endpoint. reply is the text block returned for every request.
func newTestProvider(t *testing.T, reply string, capture *map[string]any) *Provider {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/messages", func(w http.ResponseWriter, r *http.Request) {
		if capture != nil {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, capture))
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{
			"id": "msg_test",
			"type": "message",
			"role": "assistant",
			"model": "claude-sonnet-4-5-20250929",
			"content": [{"type": "text", "text": %q}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 10, "output_tokens": 20}
		}`, reply)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	provider, err := New("test-key", "", server.URL, zap.NewNop())
	require.NoError(t, err)
	return provider
}

func TestNewValidation(t *testing.T) {
	t.Run("requires api key", func(t *testing.T) {
		_, err := New("   ", "", "", zap.NewNop())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "api key is required")
	})

	t.Run("defaults the model", func(t *testing.T) {
		provider, err := New("key", "  ", "", zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, defaultModel, provider.model)
	})

	t.Run("keeps an explicit model", func(t *testing.T) {
		provider, err := New("key", "claude-haiku-4-5", "", zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, "claude-haiku-4-5", provider.model)
	})
}

func TestName(t *testing.T) {
	provider, err := New("key", "", "", zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, ai.ProviderAnthropic, provider.Name())
}

func TestRunPrompt(t *testing.T) {
	var captured map[string]any
	provider := newTestProvider(t, "  model reply  ", &captured)

	got, err := provider.RunPrompt(context.Background(), "describe a project")
	require.NoError(t, err)
	assert.Equal(t, "model reply", got)

	assert.Equal(t, defaultModel, captured["model"])
	assert.Equal(t, float64(maxTokens), captured["max_tokens"])

	system, ok := captured["system"].([]any)
	require.True(t, ok, "system blocks missing from request")
	require.Len(t, system, 1)
	assert.Contains(t, system[0].(map[string]any)["text"], "career advisor")

	messages, ok := captured["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 1)
	assert.Contains(t, fmt.Sprint(messages[0]), "describe a project")
}

func TestGenerateRecommendations(t *testing.T) {
	reply := `[{"title": "Deploy a Service with Kubernetes", "description": "Ship it.", "skills_addressed": ["Kubernetes"], "scope": "medium"}]`
	provider := newTestProvider(t, reply, nil)

	recs, err := provider.GenerateRecommendations(context.Background(), &ai.GapPayload{
		MissingSkills:   []schema.Skill{{Name: "Kubernetes", Category: schema.CategoryInfrastructure}},
		ExperienceLevel: "mid",
	})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Deploy a Service with Kubernetes", recs[0].Title)
}

func TestGenerateRecommendationsRejectsProse(t *testing.T) {
	provider := newTestProvider(t, "Sorry, I cannot help with that.", nil)

	_, err := provider.GenerateRecommendations(context.Background(), &ai.GapPayload{
		MissingSkills: []schema.Skill{{Name: "Kubernetes", Category: schema.CategoryInfrastructure}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse anthropic response")
}
