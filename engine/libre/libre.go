// Package libre adapts a LibreTranslate-compatible HTTP endpoint to the
// engine.Engine interface.
package libre

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/l10n-tools/transbatch/engine"
)

// DefaultBaseURL is the public LibreTranslate instance.
const DefaultBaseURL = "https://libretranslate.com"

// defaultMaxRetries bounds retries on 429 responses.
const defaultMaxRetries = 3

// Engine is a LibreTranslate engine handle.
type Engine struct {
	baseURL    string
	apiKey     string
	maxRetries int
	http       *resty.Client
}

// Option configures an Engine.
type Option func(*Engine)

// WithAPIKey sets the API key sent with every request.
func WithAPIKey(key string) Option {
	return func(e *Engine) { e.apiKey = key }
}

// WithBaseURL overrides the endpoint, e.g. for a self-hosted instance.
func WithBaseURL(u string) Option {
	return func(e *Engine) {
		if u != "" {
			e.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.http.SetTimeout(d)
		}
	}
}

// New creates a LibreTranslate engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		baseURL:    DefaultBaseURL,
		maxRetries: defaultMaxRetries,
		http:       resty.New().SetTimeout(30 * time.Second),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Name implements engine.Engine.
func (e *Engine) Name() string { return "libre" }

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error"`
}

// Translate implements engine.Engine. Rate-limit rejections (429) are
// retried with a short linear backoff before giving up.
func (e *Engine) Translate(ctx context.Context, text, srcLang, dstLang string) (string, error) {
	body := map[string]string{
		"q":      text,
		"source": srcLang,
		"target": dstLang,
		"format": "text",
	}
	if e.apiKey != "" {
		body["api_key"] = e.apiKey
	}

	for attempt := 0; attempt <= e.maxRetries; attempt++ {
		var result translateResponse
		resp, err := e.http.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(body).
			SetResult(&result).
			SetError(&result).
			Post(e.baseURL + "/translate")
		if err != nil {
			return "", &engine.ServiceError{Engine: e.Name(), Err: err}
		}

		if resp.StatusCode() == 429 {
			if attempt == e.maxRetries {
				return "", &engine.ServiceError{
					Engine: e.Name(),
					Err:    fmt.Errorf("rate limited after %d retries", e.maxRetries),
				}
			}
			delay := time.Duration(attempt+1) * 2 * time.Second
			select {
			case <-ctx.Done():
				return "", &engine.ServiceError{Engine: e.Name(), Err: ctx.Err()}
			case <-time.After(delay):
			}
			continue
		}

		if resp.IsError() {
			msg := result.Error
			if msg == "" {
				msg = resp.Status()
			}
			return "", &engine.ServiceError{
				Engine: e.Name(),
				Err:    fmt.Errorf("HTTP %d: %s", resp.StatusCode(), msg),
			}
		}

		if result.TranslatedText == "" && text != "" {
			return "", &engine.ServiceError{Engine: e.Name(), Err: fmt.Errorf("empty response")}
		}
		return result.TranslatedText, nil
	}

	// Unreachable: the loop either returns or retries.
	return "", &engine.ServiceError{Engine: e.Name(), Err: fmt.Errorf("retries exhausted")}
}
