// Package cache resolves melody references to local audio files, downloading
// remote audio into a flat directory on first use.
//
// The directory is the index: a file named after the source URL either exists
// (hit) or does not (miss). Entries are never revalidated or evicted.
package cache

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"hassha/internal/melody"
)

const userAgent = "hassha/1.0"

// Cache maps melody references to files under dir.
type Cache struct {
	dir         string
	registry    *melody.Registry
	client      *http.Client
	parallelism int
	logger      *slog.Logger
	inflight    singleflight.Group
}

// Option configures a Cache.
type Option func(*Cache)

// WithHTTPClient replaces the client used for downloads.
func WithHTTPClient(c *http.Client) Option {
	return func(cc *Cache) { cc.client = c }
}

// WithParallelism bounds concurrent downloads in PrefetchAll.
func WithParallelism(n int) Option {
	return func(cc *Cache) {
		if n > 0 {
			cc.parallelism = n
		}
	}
}

// WithLogger sets the logger for cache diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(cc *Cache) { cc.logger = l }
}

// New creates a Cache rooted at dir. The directory is created lazily.
func New(dir string, registry *melody.Registry, opts ...Option) *Cache {
	c := &Cache{
		dir:         dir,
		registry:    registry,
		client:      &http.Client{},
		parallelism: 4,
		logger:      slog.Default(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Dir returns the cache directory.
func (c *Cache) Dir() string { return c.dir }

// Resolve turns a melody reference into a local file path. References are
// tried as a registry id, then as an http(s) URL, then as a local path.
func (c *Cache) Resolve(ctx context.Context, ref string) (string, error) {
	if m, ok := c.registry.Lookup(ref); ok {
		return c.Fetch(ctx, m.URL())
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return c.Fetch(ctx, ref)
	}
	if _, err := os.Stat(ref); err == nil {
		return ref, nil
	}
	return "", &NotFoundError{Ref: ref}
}

// PathFor returns the cache file for url. The last path segment is used when
// it looks like a file name (non-empty, contains a dot); otherwise a
// name-based UUID of the whole URL with an .mp3 suffix.
func (c *Cache) PathFor(url string) string {
	return filepath.Join(c.dir, fileNameFor(url))
}

func fileNameFor(url string) string {
	seg := url[strings.LastIndex(url, "/")+1:]
	if seg != "" && strings.Contains(seg, ".") {
		return seg
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(url)).String() + ".mp3"
}

// Fetch returns the cached file for url, downloading it on a miss.
func (c *Cache) Fetch(ctx context.Context, url string) (string, error) {
	path := c.PathFor(url)
	if _, err := os.Stat(path); err == nil {
		c.logger.Debug("cache hit", "url", url, "path", path)
		return path, nil
	}

	// Several melodies share one audio file; collapse concurrent fetches of
	// the same cache entry.
	_, err, _ := c.inflight.Do(path, func() (any, error) {
		if _, err := os.Stat(path); err == nil {
			return nil, nil
		}
		return nil, c.download(ctx, url, path)
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

func (c *Cache) download(ctx context.Context, url, path string) error {
	c.logger.Debug("downloading", "url", url, "path", path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &DownloadError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return &DownloadError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &DownloadError{URL: url, Status: resp.StatusCode}
	}

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	// Written in place: an interrupted write leaves a truncated entry that a
	// later run will trust.
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create cache file %s: %w", path, err)
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(path)
		return &DownloadError{URL: url, Err: fmt.Errorf("read body: %w", err)}
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("write cache file %s: %w", path, err)
	}
	return nil
}
