// Package cache implements the durable translation memo table.
//
// The cache maps (source text, source language, target language) to a
// previously obtained translation, so interrupted or repeated runs never
// pay for the same engine call twice. It is held fully in memory during a
// run and flushed to a JSON file at checkpoint boundaries and on
// completion. A missing or corrupt cache file is never fatal: the run
// simply starts with an empty cache.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Key builds the composite cache key for a source text and language pair.
// The language pair is part of the key so the same source text translated
// into different target languages never collides.
func Key(text, srcLang, dstLang string) string {
	return srcLang + "|" + dstLang + "|" + text
}

// Cache is an unbounded in-memory translation memo table.
type Cache struct {
	mu      sync.Mutex
	entries map[string]string
	dirty   bool
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[string]string)}
}

// Load reads a cache file from disk. A missing file yields an empty
// cache and no error. A malformed file also yields an empty cache: the
// memo table is a durability optimization, never a reason to fail a run.
// The returned error is informational in that case (callers log it and
// continue).
func Load(path string) (*Cache, error) {
	c := New()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, fmt.Errorf("reading cache %s: %w", path, err)
	}

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return c, fmt.Errorf("parsing cache %s (starting empty): %w", path, err)
	}
	c.entries = entries
	if c.entries == nil {
		c.entries = make(map[string]string)
	}
	return c, nil
}

// Get returns the cached translation for a source text and language pair.
func (c *Cache) Get(text, srcLang, dstLang string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[Key(text, srcLang, dstLang)]
	return v, ok
}

// Put stores a translation. Puts are idempotent within a run: the first
// stored value for a key wins, a later Put with a different value for the
// same key is ignored.
func (c *Cache) Put(text, srcLang, dstLang, translated string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	k := Key(text, srcLang, dstLang)
	if _, ok := c.entries[k]; ok {
		return
	}
	c.entries[k] = translated
	c.dirty = true
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Dirty reports whether the cache has entries not yet flushed.
func (c *Cache) Dirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dirty
}

// Flush writes the cache to path atomically: the snapshot goes to a
// temporary file first and is renamed over the previous one, so a crash
// mid-flush leaves the prior snapshot intact. Flushing to an empty path
// is a no-op.
func (c *Cache) Flush(path string) error {
	if path == "" {
		return nil
	}

	c.mu.Lock()
	data, err := json.MarshalIndent(c.entries, "", "  ")
	c.mu.Unlock()
	if err != nil {
		return fmt.Errorf("marshaling cache: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating cache directory %s: %w", dir, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing cache %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing cache %s: %w", path, err)
	}

	c.mu.Lock()
	c.dirty = false
	c.mu.Unlock()
	return nil
}
