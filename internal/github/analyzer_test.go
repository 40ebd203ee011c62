package github

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/skillbridge/skillbridge/internal/analysis"
)

// fakeGitHub serves a two-repo account: an authored Python/JS web app
// and a fork that must be ignored.
func fakeGitHub(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat/repos", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") != "1" {
			fmt.Fprint(w, "[]")
			return
		}
		fmt.Fprint(w, `[
			{"name": "webapp", "fork": false, "owner": {"login": "octocat"}},
			{"name": "forked-lib", "fork": true, "owner": {"login": "octocat"}}
		]`)
	})
	mux.HandleFunc("/repos/octocat/webapp/languages", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Python": 4500, "JavaScript": 3000, "HTML": 1500, "CSS": 1000}`)
	})
	mux.HandleFunc("/repos/octocat/webapp/contents/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{"name": "Dockerfile", "path": "Dockerfile", "type": "file"},
			{"name": "requirements.txt", "path": "requirements.txt", "type": "file"},
			{"name": "package.json", "path": "package.json", "type": "file"},
			{"name": "src", "path": "src", "type": "dir"}
		]`)
	})
	mux.HandleFunc("/repos/octocat/webapp/contents/requirements.txt", func(w http.ResponseWriter, r *http.Request) {
		content := base64.StdEncoding.EncodeToString([]byte("flask==3.0\ncelery>=5\n"))
		fmt.Fprintf(w, `{"content": %q}`, content)
	})
	mux.HandleFunc("/repos/octocat/webapp/contents/package.json", func(w http.ResponseWriter, r *http.Request) {
		content := base64.StdEncoding.EncodeToString([]byte(`{"dependencies": {"react": "^18.0.0"}}`))
		fmt.Fprintf(w, `{"content": %q}`, content)
	})
	mux.HandleFunc("/repos/octocat/forked-lib/", func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("forked repository must not be fetched: %s", r.URL.Path)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestAnalyzerAnalyze(t *testing.T) {
	srv := fakeGitHub(t)
	client := NewClient("", zap.NewNop(), WithBaseURL(srv.URL))
	a := NewAnalyzer(client, zap.NewNop())

	dev, err := a.Analyze(context.Background(), "octocat")
	require.NoError(t, err)

	t.Run("languages weighted by byte share", func(t *testing.T) {
		require.Len(t, dev.Languages, 4)
		assert.Equal(t, analysis.LanguageSignal{Name: "Python", Category: "language", Percentage: 45}, dev.Languages[0])
		assert.Equal(t, analysis.LanguageSignal{Name: "JavaScript", Category: "language", Percentage: 30}, dev.Languages[1])
		assert.Equal(t, analysis.LanguageSignal{Name: "HTML", Category: "language", Percentage: 15}, dev.Languages[2])
		assert.Equal(t, analysis.LanguageSignal{Name: "CSS", Category: "language", Percentage: 10}, dev.Languages[3])
	})

	t.Run("manifests contribute frameworks", func(t *testing.T) {
		names := make([]string, 0, len(dev.Frameworks))
		for _, f := range dev.Frameworks {
			names = append(names, f.Name)
		}
		assert.Contains(t, names, "Flask")
		assert.Contains(t, names, "Celery")
		assert.Contains(t, names, "React")
	})

	t.Run("file indicators contribute infrastructure", func(t *testing.T) {
		require.NotEmpty(t, dev.InfrastructureSignals)
		assert.Equal(t, "Docker", dev.InfrastructureSignals[0].Name)
	})

	t.Run("project structures detected", func(t *testing.T) {
		assert.Contains(t, dev.ProjectStructures, "src_layout")
		assert.Contains(t, dev.ProjectStructures, "node_project")
	})
}

func TestAnalyzerUnknownUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewClient("", zap.NewNop(), WithBaseURL(srv.URL))
	a := NewAnalyzer(client, zap.NewNop())

	_, err := a.Analyze(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBuildLanguageSignalsRounding(t *testing.T) {
	signals := buildLanguageSignals(map[string]int64{"Go": 1, "Shell": 2})

	require.Len(t, signals, 2)
	assert.Equal(t, "Shell", signals[0].Name)
	assert.InDelta(t, 66.7, signals[0].Percentage, 0.001)
	assert.InDelta(t, 33.3, signals[1].Percentage, 0.001)
}

func TestBuildLanguageSignalsEmpty(t *testing.T) {
	assert.Empty(t, buildLanguageSignals(nil))
}
