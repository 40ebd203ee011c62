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
)

func newTestClient(t *testing.T, handler http.Handler, opts ...ClientOption) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	opts = append([]ClientOption{WithBaseURL(srv.URL)}, opts...)
	return NewClient("", zap.NewNop(), opts...)
}

func TestClientStatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		headers map[string]string
		wantErr error
	}{
		{"unauthorized", http.StatusUnauthorized, nil, ErrAuth},
		{"forbidden without rate info", http.StatusForbidden, nil, ErrAuth},
		{
			"forbidden with exhausted rate limit",
			http.StatusForbidden,
			map[string]string{"X-RateLimit-Remaining": "0", "X-RateLimit-Reset": "1700000000"},
			ErrRateLimit,
		},
		{"not found", http.StatusNotFound, nil, ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				for k, v := range tt.headers {
					w.Header().Set(k, v)
				}
				w.WriteHeader(tt.status)
			}))

			_, err := c.UserRepos(context.Background(), "octocat")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientUnexpectedStatusIncludesBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "upstream exploded")
	}))

	_, err := c.UserRepos(context.Background(), "octocat")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "upstream exploded")
}

func TestClientRequestHeaders(t *testing.T) {
	var gotAccept, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, "[]")
	}))
	defer srv.Close()

	c := NewClient("tok123", zap.NewNop(), WithBaseURL(srv.URL))
	_, err := c.UserRepos(context.Background(), "octocat")

	require.NoError(t, err)
	assert.Equal(t, "application/vnd.github+json", gotAccept)
	assert.Equal(t, "Bearer tok123", gotAuth)
	assert.True(t, c.Authenticated())
}

func TestClientRateLimitTracking(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Remaining", "41")
		w.Header().Set("X-RateLimit-Reset", "1700000000")
		fmt.Fprint(w, "[]")
	}))

	_, err := c.UserRepos(context.Background(), "octocat")
	require.NoError(t, err)

	rl := c.RateLimit()
	assert.Equal(t, 41, rl.Remaining)
	assert.Equal(t, int64(1700000000), rl.Reset)
	assert.False(t, rl.Authenticated)
}

func TestUserReposPagination(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))

		switch page {
		case "1":
			fmt.Fprint(w, "[")
			for i := 0; i < reposPerPage; i++ {
				if i > 0 {
					fmt.Fprint(w, ",")
				}
				fmt.Fprintf(w, `{"name": "repo%d", "owner": {"login": "octocat"}}`, i)
			}
			fmt.Fprint(w, "]")
		case "2":
			fmt.Fprint(w, `[{"name": "last", "owner": {"login": "octocat"}}]`)
		default:
			t.Errorf("unexpected page %q", page)
		}
	}))

	repos, err := c.UserRepos(context.Background(), "octocat")

	require.NoError(t, err)
	require.Len(t, repos, reposPerPage+1)
	assert.Equal(t, "last", repos[len(repos)-1].Name)
	assert.Equal(t, "octocat", repos[0].Owner.Login)
}

func TestRepoLanguages(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/octocat/hello/languages", r.URL.Path)
		fmt.Fprint(w, `{"Go": 12000, "Shell": 300}`)
	}))

	langs, err := c.RepoLanguages(context.Background(), "octocat", "hello")

	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"Go": 12000, "Shell": 300}, langs)
}

func TestRepoContentsEmptyRepo(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	entries, err := c.RepoContents(context.Background(), "octocat", "empty")

	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestFileTextDecodesWrappedBase64(t *testing.T) {
	content := base64.StdEncoding.EncodeToString([]byte(`{"dependencies": {"react": "18"}}`))
	// The contents API wraps base64 at 60 columns.
	wrapped := content[:20] + "\n" + content[20:]

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"content": %q}`, wrapped)
	}))

	got := c.FileText(context.Background(), "octocat", "hello", "package.json")
	assert.Equal(t, `{"dependencies": {"react": "18"}}`, got)
}

func TestFileTextMissingFileIsEmpty(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	assert.Equal(t, "", c.FileText(context.Background(), "octocat", "hello", "go.mod"))
}
