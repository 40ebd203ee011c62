package github

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// DefaultCacheTTL is how long cached API responses stay fresh.
const DefaultCacheTTL = time.Hour

// Cache stores GitHub API responses on disk with TTL-based expiry.
// Entries are keyed by API path, hashed to a safe filename. All
// failures are silent: a broken cache degrades to extra API calls,
// never to an analysis error.
type Cache struct {
	dir string
	ttl time.Duration
}

type cacheEnvelope struct {
	TS   int64           `json:"ts"`
	Body json.RawMessage `json:"body"`
}

// NewCache returns a Cache rooted under the user cache directory. A
// nil Cache is a valid no-op cache.
func NewCache(ttl time.Duration) *Cache {
	base, err := os.UserCacheDir()
	if err != nil {
		return nil
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	dir := filepath.Join(base, "skillbridge")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil
	}
	return &Cache{dir: dir, ttl: ttl}
}

func (c *Cache) file(path string) string {
	sum := sha256.Sum256([]byte(path))
	return filepath.Join(c.dir, hex.EncodeToString(sum[:])+".json")
}

// Get returns the cached response body for an API path, or false when
// missing, unreadable, or expired.
func (c *Cache) Get(path string) (json.RawMessage, bool) {
	if c == nil {
		return nil, false
	}

	data, err := os.ReadFile(c.file(path))
	if err != nil {
		return nil, false
	}

	var envelope cacheEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, false
	}
	if time.Since(time.Unix(envelope.TS, 0)) > c.ttl {
		return nil, false
	}
	return envelope.Body, true
}

// Put stores a response body for an API path.
func (c *Cache) Put(path string, body json.RawMessage) {
	if c == nil {
		return
	}

	data, err := json.Marshal(cacheEnvelope{TS: time.Now().Unix(), Body: body})
	if err != nil {
		return
	}
	_ = os.WriteFile(c.file(path), data, 0o644)
}
