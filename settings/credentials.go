// Package settings provides storage for transbatch user settings:
// engine credentials and the default cache location.
//
// All settings are stored in the XDG data directory:
//
//	$XDG_DATA_HOME/transbatch/  (default: ~/.local/share/transbatch/)
//
// Files stored:
//   - auth.json  — API keys, keyed by engine ID
//   - cache.json — default translation cache (see the cache package)
//
// auth.json is a JSON object keyed by engine ID:
//
//	{"libre": {"key": "...", "baseUrl": "https://..."}}
//
// File permissions are 0600 (owner read/write only).
//
// Lookup order for API keys:
//  1. --api-key flag (highest priority)
//  2. Engine environment variable (e.g. LIBRETRANSLATE_API_KEY)
//  3. This credential store
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	dataDirName = "transbatch"
	fileName    = "auth.json"
)

// Info is the credential entry stored per engine in auth.json.
type Info struct {
	// Key is the API key.
	Key string `json:"key,omitempty"`
	// BaseURL is a custom endpoint URL for self-hosted engines.
	BaseURL string `json:"baseUrl,omitempty"`
}

// Store holds all engine credentials, keyed by engine ID.
type Store map[string]*Info

// ---------------------------------------------------------------------------
// File paths
// ---------------------------------------------------------------------------

// dataDir returns the XDG data directory for transbatch.
// Respects $XDG_DATA_HOME (falls back to ~/.local/share).
func dataDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, dataDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", dataDirName), nil
}

func filePath() (string, error) {
	dir, err := dataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// FilePath returns the auth.json file path for display purposes.
func FilePath() string {
	p, err := filePath()
	if err != nil {
		return ""
	}
	return p
}

// DataDir returns the transbatch data directory path.
// Default: ~/.local/share/transbatch (or $XDG_DATA_HOME/transbatch).
func DataDir() (string, error) {
	return dataDir()
}

// DefaultCachePath returns the default translation cache location,
// $XDG_DATA_HOME/transbatch/cache.json. Empty on failure; callers then
// run without a persistent cache.
func DefaultCachePath() string {
	dir, err := dataDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "cache.json")
}

// ---------------------------------------------------------------------------
// Load / Save
// ---------------------------------------------------------------------------

// Load reads the credential store from disk.
// Returns an empty store if the file doesn't exist or is invalid.
func Load() Store {
	path, err := filePath()
	if err != nil {
		return make(Store)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return make(Store)
	}

	var store Store
	if err := json.Unmarshal(data, &store); err != nil {
		return make(Store)
	}

	if store == nil {
		return make(Store)
	}

	return store
}

// Save writes the credential store to disk with 0600 permissions.
func Save(store Store) error {
	path, err := filePath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling credentials: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing auth file: %w", err)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Get / Set / Delete
// ---------------------------------------------------------------------------

// Get returns the credential entry for an engine, or nil if not found.
func Get(engineID string) *Info {
	store := Load()
	return store[engineID]
}

// SetAPIKey stores an API key for an engine (upsert, preserving any
// stored base URL).
func SetAPIKey(engineID, key string) error {
	store := Load()
	info := store[engineID]
	if info == nil {
		info = &Info{}
	}
	info.Key = key
	store[engineID] = info
	return Save(store)
}

// SetBaseURL stores a custom endpoint URL for an engine.
func SetBaseURL(engineID, baseURL string) error {
	store := Load()
	info := store[engineID]
	if info == nil {
		info = &Info{}
	}
	info.BaseURL = baseURL
	store[engineID] = info
	return Save(store)
}

// GetAPIKey retrieves the stored API key for an engine.
// Returns empty string if not found.
func GetAPIKey(engineID string) string {
	info := Get(engineID)
	if info == nil {
		return ""
	}
	return info.Key
}

// GetBaseURL retrieves the stored base URL for an engine.
// Returns empty string if not found.
func GetBaseURL(engineID string) string {
	info := Get(engineID)
	if info == nil {
		return ""
	}
	return info.BaseURL
}

// Remove deletes credentials for an engine.
func Remove(engineID string) error {
	store := Load()
	if _, ok := store[engineID]; !ok {
		return nil // Nothing to delete
	}
	delete(store, engineID)
	return Save(store)
}

// RemoveAll removes all stored credentials.
func RemoveAll() error {
	path, err := filePath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing auth file: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Resolution helpers
// ---------------------------------------------------------------------------

// EnvVarForEngine returns the environment variable consulted for an
// engine's API key, or empty if the engine takes no key.
func EnvVarForEngine(engineID string) string {
	switch engineID {
	case "libre":
		return "LIBRETRANSLATE_API_KEY"
	}
	return ""
}

// ResolveAPIKey applies the lookup order: flag, environment variable,
// credential store.
func ResolveAPIKey(engineID, flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := EnvVarForEngine(engineID); env != "" {
		if v := os.Getenv(env); v != "" {
			return v
		}
	}
	return GetAPIKey(engineID)
}

// MaskKey returns a masked version of a key for display.
func MaskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
