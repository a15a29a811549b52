package cache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// Stats summarises the cache directory.
type Stats struct {
	Location   string
	FileCount  int
	TotalBytes int64
}

// Stats counts regular files directly under the cache directory.
func (c *Cache) Stats() (Stats, error) {
	st := Stats{Location: c.dir}
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return st, nil
		}
		return st, fmt.Errorf("read cache dir: %w", err)
	}
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return st, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		st.FileCount++
		st.TotalBytes += info.Size()
	}
	return st, nil
}

// Clear deletes every regular file directly under the cache directory and
// returns how many were removed.
func (c *Cache) Clear() (int, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("read cache dir: %w", err)
	}
	cleared := 0
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, e.Name())); err != nil {
			return cleared, fmt.Errorf("remove %s: %w", e.Name(), err)
		}
		cleared++
	}
	return cleared, nil
}

// PrefetchResult is the outcome for one registry entry.
type PrefetchResult struct {
	ID   string
	Path string
	Err  error
}

// PrefetchAll downloads every predefined melody. Results are in registry order
// and each entry succeeds or fails on its own.
func (c *Cache) PrefetchAll(ctx context.Context) []PrefetchResult {
	all := c.registry.All()
	results := make([]PrefetchResult, len(all))

	var g errgroup.Group
	g.SetLimit(c.parallelism)
	for i, m := range all {
		g.Go(func() error {
			path, err := c.Fetch(ctx, m.URL())
			results[i] = PrefetchResult{ID: m.ID, Path: path, Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}
