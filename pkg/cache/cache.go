// Package cache stores solved circuits and enumerated path collections.
//
// Enumeration is exponential in the worst case, so results are cached by a
// content hash of the networks and the enumeration options. Three backends
// implement [Cache]:
//   - [NullCache]: never stores anything (--no-cache)
//   - [FileCache]: JSON entries under the user cache directory (CLI default)
//   - [RedisCache]: a shared Redis instance (HTTP server)
//
// Keys are built by a [Keyer], so callers never format key strings
// themselves.
package cache

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// Default entry lifetimes. Results are pure functions of their inputs, so
// expiry only bounds disk and memory growth.
const (
	TTLPaths  = 7 * 24 * time.Hour
	TTLResult = 7 * 24 * time.Hour
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the stored value and true, or false on a miss.
	// Expired and unreadable entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// DefaultDir returns the directory the CLI keeps its file cache in:
// $XDG_CACHE_HOME/polyorder, falling back to the OS user cache directory.
func DefaultDir() (string, error) {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "polyorder"), nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "polyorder"), nil
}
