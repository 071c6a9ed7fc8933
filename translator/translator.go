// Package translator implements the safe transform-one-unit operation:
// it combines the placeholder shield, the translation cache, and an
// external engine call into a single translation of one text unit that
// preserves placeholders, whitespace, and line structure.
package translator

import (
	"context"
	"strings"

	"github.com/l10n-tools/transbatch/cache"
	"github.com/l10n-tools/transbatch/engine"
	"github.com/l10n-tools/transbatch/placeholder"
)

// Translator translates single text units for one language pair.
type Translator struct {
	engine  engine.Engine
	cache   *cache.Cache
	srcLang string
	dstLang string
}

// New creates a Translator. The cache may be shared with other
// translators for different language pairs: cache keys carry the pair.
func New(e engine.Engine, c *cache.Cache, srcLang, dstLang string) *Translator {
	return &Translator{engine: e, cache: c, srcLang: srcLang, dstLang: dstLang}
}

// SrcLang returns the source language code.
func (t *Translator) SrcLang() string { return t.srcLang }

// DstLang returns the target language code.
func (t *Translator) DstLang() string { return t.dstLang }

// Translate translates one unit of text. It returns the translated text,
// whether the result came entirely from the cache (no engine call), and
// an error when the engine failed.
//
// Empty or whitespace-only text is returned unchanged without an engine
// call and without a cache entry. Leading/trailing spaces and tabs and
// internal newline structure are preserved around the translated core:
// the engine is not trusted to keep whitespace-only runs or multi-line
// layout intact. On engine failure the unit is returned unchanged; the
// caller decides whether to log and continue (batch runs do).
func (t *Translator) Translate(ctx context.Context, text string) (string, bool, error) {
	if strings.TrimSpace(text) == "" {
		return text, false, nil
	}

	lines := strings.Split(text, "\n")
	out := make([]string, len(lines))
	called := false

	for i, line := range lines {
		translated, fromCache, err := t.translateLine(ctx, line)
		if err != nil {
			return text, false, err
		}
		if !fromCache {
			called = called || strings.TrimSpace(line) != ""
		}
		out[i] = translated
	}

	return strings.Join(out, "\n"), !called, nil
}

// translateLine translates a single line, preserving its exact leading
// and trailing spaces/tabs.
func (t *Translator) translateLine(ctx context.Context, line string) (string, bool, error) {
	core := strings.Trim(line, " \t")
	if core == "" {
		return line, true, nil
	}
	start := len(line) - len(strings.TrimLeft(line, " \t"))
	prefix := line[:start]
	suffix := line[start+len(core):]

	// Read-through: the cache key is the unshielded core text, the value
	// carries placeholders intact.
	if hit, ok := t.cache.Get(core, t.srcLang, t.dstLang); ok {
		return prefix + hit + suffix, true, nil
	}

	masked, mapping := placeholder.Shield(core)
	translated, err := t.engine.Translate(ctx, masked, t.srcLang, t.dstLang)
	if err != nil {
		return "", false, err
	}
	restored := placeholder.Unshield(translated, mapping)

	t.cache.Put(core, t.srcLang, t.dstLang, restored)
	return prefix + restored + suffix, false, nil
}
