// Package engine defines the external translation engine contract and
// the failure type shared by all engine adapters.
package engine

import (
	"context"
	"fmt"
)

// Engine translates one piece of text between a language pair. The text
// an engine receives has already been shielded and stripped: it contains
// no raw interpolation placeholders and no leading/trailing whitespace
// the engine could lose.
type Engine interface {
	// Translate returns the translated text, or a *ServiceError on
	// network failure, quota/rate-limit rejection, or an unexpected or
	// empty response.
	Translate(ctx context.Context, text, srcLang, dstLang string) (string, error)

	// Name identifies the engine in logs and credential storage.
	Name() string
}

// ServiceError is the recoverable per-call failure of a translation
// engine. Batch processing treats it as scoped to a single unit: the
// unit is left untranslated and the run continues.
type ServiceError struct {
	// Engine is the name of the failing engine.
	Engine string
	// Err is the underlying cause.
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: translation failed: %v", e.Engine, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }
