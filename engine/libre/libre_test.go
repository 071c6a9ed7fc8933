package libre

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/l10n-tools/transbatch/engine"
)

func TestTranslate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/translate" {
			t.Errorf("path = %q, want /translate", r.URL.Path)
		}
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if req["q"] != "Hello" || req["source"] != "en" || req["target"] != "fr" {
			t.Errorf("unexpected request: %v", req)
		}
		if req["api_key"] != "k123" {
			t.Errorf("api_key = %q, want k123", req["api_key"])
		}
		json.NewEncoder(w).Encode(map[string]string{"translatedText": "Bonjour"})
	}))
	defer srv.Close()

	e := New(WithBaseURL(srv.URL), WithAPIKey("k123"))
	got, err := e.Translate(context.Background(), "Hello", "en", "fr")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "Bonjour" {
		t.Fatalf("Translate = %q, want Bonjour", got)
	}
}

func TestTranslateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid api key"})
	}))
	defer srv.Close()

	e := New(WithBaseURL(srv.URL))
	_, err := e.Translate(context.Background(), "Hello", "en", "fr")
	if err == nil {
		t.Fatal("want error on HTTP 403")
	}
	var serr *engine.ServiceError
	if !errors.As(err, &serr) {
		t.Fatalf("error type = %T, want *engine.ServiceError", err)
	}
}

func TestTranslateEmptyResponseIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"translatedText": ""})
	}))
	defer srv.Close()

	e := New(WithBaseURL(srv.URL))
	if _, err := e.Translate(context.Background(), "Hello", "en", "fr"); err == nil {
		t.Fatal("empty translatedText must be reported as a service error")
	}
}

func TestTranslateRetriesRateLimit(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"translatedText": "Bonjour"})
	}))
	defer srv.Close()

	e := New(WithBaseURL(srv.URL))
	got, err := e.Translate(context.Background(), "Hello", "en", "fr")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "Bonjour" || calls != 2 {
		t.Fatalf("got %q after %d calls, want Bonjour after 2", got, calls)
	}
}
