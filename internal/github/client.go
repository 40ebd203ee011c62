// Package github extracts developer context signals from a user's
// public GitHub repositories. It works on repository metadata and
// top-level structure, never on full source analysis.
package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const (
	apiBase        = "https://api.github.com"
	acceptHeader   = "application/vnd.github+json"
	defaultTimeout = 30 * time.Second

	reposPerPage = 100
)

// Typed failures callers branch on. The analyzer surfaces these as
// stage errors with actionable messages.
var (
	ErrAuth      = errors.New("github token is invalid or lacks required permissions")
	ErrNotFound  = errors.New("github resource not found")
	ErrRateLimit = errors.New("github api rate limit exceeded")
)

// RateLimit is the rate-limit state observed on the last API response.
type RateLimit struct {
	Remaining     int
	Reset         int64
	Authenticated bool
}

// Client is a minimal GitHub REST client with rate-limit tracking and
// an optional disk cache.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
	cache      *Cache
	logger     *zap.Logger

	rateRemaining int
	rateReset     int64
	rateSeen      bool
}

// ClientOption adjusts Client construction.
type ClientOption func(*Client)

// WithBaseURL points the client at a non-default API host. Used by
// tests.
func WithBaseURL(base string) ClientOption {
	return func(c *Client) { c.baseURL = base }
}

// WithCache attaches a response cache. A nil cache disables caching.
func WithCache(cache *Cache) ClientOption {
	return func(c *Client) { c.cache = cache }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) { c.httpClient.Timeout = timeout }
}

// NewClient creates a Client. An empty token means unauthenticated
// access with its lower rate limits.
func NewClient(token string, log *zap.Logger, opts ...ClientOption) *Client {
	c := &Client{
		token:      token,
		baseURL:    apiBase,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Authenticated reports whether the client carries a token.
func (c *Client) Authenticated() bool { return c.token != "" }

// RateLimit returns the last observed rate-limit state.
func (c *Client) RateLimit() RateLimit {
	return RateLimit{
		Remaining:     c.rateRemaining,
		Reset:         c.rateReset,
		Authenticated: c.Authenticated(),
	}
}

func (c *Client) get(ctx context.Context, path string) (json.RawMessage, error) {
	if body, ok := c.cache.Get(path); ok {
		c.logger.Debug("github cache hit", zap.String("path", path))
		return body, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("User-Agent", "skillbridge")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reach github api: %w", err)
	}
	defer resp.Body.Close()

	c.updateRateLimit(resp)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrAuth
	case resp.StatusCode == http.StatusForbidden && c.rateSeen && c.rateRemaining == 0:
		return nil, fmt.Errorf("%w, resets at unix timestamp %d", ErrRateLimit, c.rateReset)
	case resp.StatusCode == http.StatusForbidden:
		return nil, ErrAuth
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	case resp.StatusCode != http.StatusOK:
		preview, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return nil, fmt.Errorf("github api error %d: %s", resp.StatusCode, preview)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read github response: %w", err)
	}

	c.cache.Put(path, body)
	return body, nil
}

func (c *Client) updateRateLimit(resp *http.Response) {
	if remaining := resp.Header.Get("X-RateLimit-Remaining"); remaining != "" {
		if n, err := strconv.Atoi(remaining); err == nil {
			c.rateRemaining = n
			c.rateSeen = true
		}
	}
	if reset := resp.Header.Get("X-RateLimit-Reset"); reset != "" {
		if n, err := strconv.ParseInt(reset, 10, 64); err == nil {
			c.rateReset = n
		}
	}
}

// Repo is the subset of repository metadata the analyzer needs.
type Repo struct {
	Name  string `json:"name"`
	Fork  bool   `json:"fork"`
	Owner struct {
		Login string `json:"login"`
	} `json:"owner"`
}

// UserRepos fetches all public repositories for username, most
// recently pushed first.
func (c *Client) UserRepos(ctx context.Context, username string) ([]Repo, error) {
	var repos []Repo
	for page := 1; ; page++ {
		path := fmt.Sprintf("/users/%s/repos?per_page=%d&sort=pushed&page=%d",
			url.PathEscape(username), reposPerPage, page)
		body, err := c.get(ctx, path)
		if err != nil {
			return nil, err
		}

		var batch []Repo
		if err := json.Unmarshal(body, &batch); err != nil {
			return nil, fmt.Errorf("decode repo list: %w", err)
		}
		if len(batch) == 0 {
			break
		}
		repos = append(repos, batch...)
		if len(batch) < reposPerPage {
			break
		}
	}
	return repos, nil
}

// RepoLanguages returns language byte counts for a repository.
func (c *Client) RepoLanguages(ctx context.Context, owner, repo string) (map[string]int64, error) {
	body, err := c.get(ctx, fmt.Sprintf("/repos/%s/%s/languages", owner, repo))
	if err != nil {
		return nil, err
	}

	langs := make(map[string]int64)
	if err := json.Unmarshal(body, &langs); err != nil {
		return nil, fmt.Errorf("decode languages: %w", err)
	}
	return langs, nil
}

// ContentEntry is one item of a repository directory listing.
type ContentEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"`
}

// RepoContents returns the top-level listing of a repository. Empty
// repositories yield an empty listing, not an error.
func (c *Client) RepoContents(ctx context.Context, owner, repo string) ([]ContentEntry, error) {
	body, err := c.get(ctx, fmt.Sprintf("/repos/%s/%s/contents/", owner, repo))
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []ContentEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		// A file path returns a single object instead of a list.
		var single ContentEntry
		if err := json.Unmarshal(body, &single); err != nil {
			return nil, fmt.Errorf("decode contents listing: %w", err)
		}
		entries = []ContentEntry{single}
	}
	return entries, nil
}

// FileText fetches and decodes a text file from a repository. Missing
// or undecodable files return "" with no error: manifest probing is
// best-effort.
func (c *Client) FileText(ctx context.Context, owner, repo, path string) string {
	body, err := c.get(ctx, fmt.Sprintf("/repos/%s/%s/contents/%s", owner, repo, path))
	if err != nil {
		return ""
	}

	var file struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal(body, &file); err != nil {
		return ""
	}

	decoded, err := base64.StdEncoding.DecodeString(removeNewlines(file.Content))
	if err != nil {
		return ""
	}
	return string(decoded)
}

// The contents API wraps base64 payloads at 60 columns.
func removeNewlines(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\n' && s[i] != '\r' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
