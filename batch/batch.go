// Package batch implements the sequential batch orchestrator: it walks
// the ordered translatable units of a loaded document, decides per unit
// whether to translate or skip, applies results in place, and flushes the
// translation cache at periodic checkpoints so an interrupted run can be
// resumed with bounded rework.
package batch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/l10n-tools/transbatch/cache"
	"github.com/l10n-tools/transbatch/translator"
)

// Unit is one translatable text item with stable identity within a
// document. Units are owned by the document and mutated in place when a
// translation is applied.
type Unit interface {
	// ID is the unit's stable identity (message id, dictionary key, ...).
	ID() string
	// Source is the immutable source text.
	Source() string
	// Target is the current translation, empty if untranslated.
	Target() string
	// SetTarget applies a translation to the unit.
	SetTarget(text string)
}

// Document is the uniform record abstraction the format adapters
// provide: an ordered sequence of translatable units plus a writer for
// the final output.
type Document interface {
	// Units returns the document's translatable units in document order.
	Units() []Unit
	// Save writes the document to path. Writing is all-or-nothing: a
	// failed Save must not leave a garbled output file behind.
	Save(path string) error
}

// Options controls a batch run.
type Options struct {
	// OutputPath is where the translated document is written.
	OutputPath string
	// SkipTranslated skips units that already carry a non-empty
	// translation. Default true (see NewRunner).
	SkipTranslated bool
	// DryRun executes the full pipeline, cache population included, but
	// suppresses the final document write.
	DryRun bool
	// CheckpointEvery flushes the cache after every N processed units,
	// bounding the engine work lost on interruption. Zero flushes only
	// once, at the end of the run.
	CheckpointEvery int
	// RequestDelay spaces out engine calls; the free endpoints are
	// rate-sensitive.
	RequestDelay time.Duration
	// Verbose emits per-unit progress through OnLog.
	Verbose bool
	// OnProgress is called after each processed unit.
	OnProgress func(done, total int)
	// OnLog emits log messages. Nil discards them.
	OnLog func(format string, args ...any)
}

// Result carries the run counters.
type Result struct {
	// Total is the number of units seen.
	Total int
	// Translated is the number of units newly translated this run.
	Translated int
	// Skipped is the number of units skipped by the skip policy.
	Skipped int
	// Failed is the number of units left untranslated after an engine
	// failure.
	Failed int
	// FromCache is the number of translated units served entirely from
	// the cache.
	FromCache int
}

// Runner executes batch runs. It owns the cache for the duration of a
// run; the cache is the single source of truth for memoized results.
type Runner struct {
	translator *translator.Translator
	cache      *cache.Cache
	cachePath  string
	opts       Options
}

// NewRunner creates a Runner. cachePath may be empty to disable durable
// memoization.
func NewRunner(tr *translator.Translator, c *cache.Cache, cachePath string, opts Options) *Runner {
	return &Runner{translator: tr, cache: c, cachePath: cachePath, opts: opts}
}

func (r *Runner) log(format string, args ...any) {
	if r.opts.OnLog != nil {
		r.opts.OnLog(format, args...)
	}
}

// Run processes every unit of doc in order, strictly one at a time, and
// writes the translated document to OutputPath unless DryRun is set.
//
// Engine failures are scoped to single units: the unit keeps its source
// text and the run continues. Context cancellation stops the run after
// the current unit, flushes the cache, and returns the context error;
// together with a resume-merged document that makes mid-run termination
// recoverable. A failed output write is fatal, but the checkpointed
// cache remains valid for a retry.
func (r *Runner) Run(ctx context.Context, doc Document) (Result, error) {
	units := doc.Units()
	res := Result{Total: len(units)}
	processed := 0

	for i, u := range units {
		select {
		case <-ctx.Done():
			r.checkpoint()
			return res, ctx.Err()
		default:
		}

		if r.opts.SkipTranslated && strings.TrimSpace(u.Target()) != "" {
			res.Skipped++
			if r.opts.Verbose {
				r.log("[SKIP] %d/%d %s: already translated", i+1, len(units), u.ID())
			}
			if r.opts.OnProgress != nil {
				r.opts.OnProgress(i+1, len(units))
			}
			continue
		}

		// Re-translating an already translated unit starts from its
		// current translation, not the source text.
		source := u.Source()
		if s := u.Target(); strings.TrimSpace(s) != "" {
			source = s
		}

		translated, fromCache, err := r.translator.Translate(ctx, source)
		if err != nil {
			res.Failed++
			r.log("[WARN] %d/%d %s: %v (keeping source text)", i+1, len(units), u.ID(), err)
		} else {
			u.SetTarget(translated)
			if translated != source || fromCache {
				res.Translated++
			}
			if fromCache {
				res.FromCache++
			}
			if r.opts.Verbose {
				r.log("[OK] %d/%d %s: %s", i+1, len(units), u.ID(), snippet(translated))
			}
		}

		processed++
		if r.opts.OnProgress != nil {
			r.opts.OnProgress(i+1, len(units))
		}

		if r.opts.CheckpointEvery > 0 && processed%r.opts.CheckpointEvery == 0 {
			r.checkpoint()
		}

		if err == nil && !fromCache && r.opts.RequestDelay > 0 && i < len(units)-1 {
			select {
			case <-ctx.Done():
				r.checkpoint()
				return res, ctx.Err()
			case <-time.After(r.opts.RequestDelay):
			}
		}
	}

	r.checkpoint()

	if r.opts.DryRun {
		r.log("[DRY-RUN] would write %s", r.opts.OutputPath)
		return res, nil
	}
	if err := doc.Save(r.opts.OutputPath); err != nil {
		return res, fmt.Errorf("writing output %s: %w", r.opts.OutputPath, err)
	}
	return res, nil
}

// checkpoint flushes the cache. Flush failures degrade gracefully: the
// cache is an optional durability artifact, losing it never aborts a run.
func (r *Runner) checkpoint() {
	if r.cachePath == "" || !r.cache.Dirty() {
		return
	}
	if err := r.cache.Flush(r.cachePath); err != nil {
		r.log("[WARN] cache checkpoint failed: %v", err)
	}
}

// snippet shortens a translation for progress output.
func snippet(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) > 60 {
		return s[:57] + "..."
	}
	return s
}
