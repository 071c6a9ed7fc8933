// Package google adapts the free Google Translate endpoint (via
// gtranslate) to the engine.Engine interface. No API key is required,
// which also means the endpoint is rate-sensitive: callers should space
// requests out with a delay between units.
package google

import (
	"context"
	"errors"

	"github.com/bregydoc/gtranslate"

	"github.com/l10n-tools/transbatch/engine"
)

// Engine is a Google Translate engine handle.
type Engine struct{}

// New creates a Google Translate engine.
func New() *Engine {
	return &Engine{}
}

// Name implements engine.Engine.
func (e *Engine) Name() string { return "google" }

// Translate implements engine.Engine.
func (e *Engine) Translate(ctx context.Context, text, srcLang, dstLang string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &engine.ServiceError{Engine: e.Name(), Err: err}
	}

	translated, err := gtranslate.TranslateWithParams(text, gtranslate.TranslationParams{
		From: srcLang,
		To:   dstLang,
	})
	if err != nil {
		return "", &engine.ServiceError{Engine: e.Name(), Err: err}
	}
	if translated == "" && text != "" {
		return "", &engine.ServiceError{Engine: e.Name(), Err: errors.New("empty response")}
	}
	return translated, nil
}
