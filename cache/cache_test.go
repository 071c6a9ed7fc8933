package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestGetPutAndLanguagePairIsolation(t *testing.T) {
	c := New()

	if _, ok := c.Get("Hello", "en", "fr"); ok {
		t.Fatal("empty cache should miss")
	}

	c.Put("Hello", "en", "fr", "Bonjour")
	if v, ok := c.Get("Hello", "en", "fr"); !ok || v != "Bonjour" {
		t.Fatalf("Get(en,fr) = %q,%v, want Bonjour,true", v, ok)
	}

	// Same source text, different target language: independent entry.
	if _, ok := c.Get("Hello", "en", "de"); ok {
		t.Fatal("en->de lookup must not be satisfied by the en->fr entry")
	}
	c.Put("Hello", "en", "de", "Hallo")
	if v, _ := c.Get("Hello", "en", "de"); v != "Hallo" {
		t.Fatalf("Get(en,de) = %q, want Hallo", v)
	}
	if v, _ := c.Get("Hello", "en", "fr"); v != "Bonjour" {
		t.Fatalf("en->fr entry clobbered: %q", v)
	}
}

func TestPutIsIdempotent(t *testing.T) {
	c := New()
	c.Put("Hello", "en", "fr", "Bonjour")
	c.Put("Hello", "en", "fr", "Salut")
	if v, _ := c.Get("Hello", "en", "fr"); v != "Bonjour" {
		t.Fatalf("second Put overwrote the entry: %q", v)
	}
	if c.Len() != 1 {
		t.Fatalf("Len = %d, want 1", c.Len())
	}
}

func TestLoadMissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing cache file must not error: %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("Len = %d, want 0", c.Len())
	}
}

func TestLoadMalformedFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err == nil {
		t.Fatal("malformed cache should report a parse error")
	}
	if c == nil || c.Len() != 0 {
		t.Fatal("malformed cache must still yield a usable empty cache")
	}
}

func TestFlushAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "cache.json")

	c := New()
	c.Put("Hello {name}", "en", "fr", "Bonjour {name}")
	c.Put("Bye", "en", "fr", "Au revoir")
	if !c.Dirty() {
		t.Fatal("cache with unflushed entries should be dirty")
	}

	if err := c.Flush(path); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if c.Dirty() {
		t.Fatal("cache should be clean after Flush")
	}

	// The durable format is a flat JSON object keyed src|dst|text.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("cache file is not valid JSON: %v", err)
	}
	if raw["en|fr|Hello {name}"] != "Bonjour {name}" {
		t.Fatalf("unexpected durable key layout: %v", raw)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if v, _ := reloaded.Get("Bye", "en", "fr"); v != "Au revoir" {
		t.Fatalf("reloaded Get(Bye) = %q", v)
	}
	if reloaded.Len() != 2 {
		t.Fatalf("reloaded Len = %d, want 2", reloaded.Len())
	}
}

func TestFlushEmptyPathIsNoop(t *testing.T) {
	c := New()
	c.Put("x", "en", "fr", "y")
	if err := c.Flush(""); err != nil {
		t.Fatalf("Flush(\"\") = %v, want nil", err)
	}
}

func TestFlushDoesNotCorruptPreviousSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")

	c := New()
	c.Put("a", "en", "fr", "1")
	if err := c.Flush(path); err != nil {
		t.Fatal(err)
	}

	// A leftover temp file from an interrupted flush must not disturb
	// the committed snapshot.
	if err := os.WriteFile(path+".tmp", []byte("garbage"), 0644); err != nil {
		t.Fatal(err)
	}
	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if v, _ := reloaded.Get("a", "en", "fr"); v != "1" {
		t.Fatalf("snapshot lost: %q", v)
	}
}
