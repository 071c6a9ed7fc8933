// Package config implements .transbatch.yaml project file support.
//
// When a .transbatch.yaml file exists in the project root, transbatch
// uses it as the source of truth for translation targets: every target
// names an input document and an output path pattern, and the run
// command processes them all without further flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// YAML schema
// ---------------------------------------------------------------------------

// File is the top-level .transbatch.yaml structure.
type File struct {
	// SourceLang is the source language code (default "en").
	SourceLang string `yaml:"source_lang,omitempty"`
	// TargetLangs is the default language list for all targets.
	TargetLangs []string `yaml:"target_langs,omitempty"`
	// Engine selects the translation backend ("google" or "libre",
	// default "google").
	Engine string `yaml:"engine,omitempty"`
	// EngineURL is the backend base URL for self-hosted engines.
	EngineURL string `yaml:"engine_url,omitempty"`
	// CacheFile is the translation cache path. Empty means the
	// per-user default location.
	CacheFile string `yaml:"cache_file,omitempty"`
	// CheckpointEvery flushes the cache after this many translated
	// units (default 50, 0 disables intermediate flushes).
	CheckpointEvery *int `yaml:"checkpoint_every,omitempty"`
	// RequestDelayMS is the pause between engine requests in
	// milliseconds.
	RequestDelayMS int `yaml:"request_delay_ms,omitempty"`
	// Targets is the list of translation targets.
	Targets []Target `yaml:"targets"`
}

// Target describes a single translation unit: one input document fanned
// out to one output file per language.
type Target struct {
	// Name is a human-readable label shown in status/logs.
	Name string `yaml:"name"`
	// Input is the source document path relative to .transbatch.yaml.
	Input string `yaml:"input"`
	// Output is the output path pattern. The literal "{lang}" is
	// replaced with each target language code.
	Output string `yaml:"output"`
	// Format overrides extension-based detection ("po", "json", "yaml").
	Format string `yaml:"format,omitempty"`
	// TargetLangs overrides the global language list for this target.
	TargetLangs []string `yaml:"target_langs,omitempty"`
	// SkipTranslated controls whether units that already carry a
	// translation are left alone (default true).
	SkipTranslated *bool `yaml:"skip_translated,omitempty"`
}

// SkipPolicy returns the effective skip-translated setting.
func (t *Target) SkipPolicy() bool {
	if t.SkipTranslated == nil {
		return true
	}
	return *t.SkipTranslated
}

// CheckpointInterval returns the effective checkpoint interval. An
// explicit 0 is kept as-is and means a single flush at the end.
func (f *File) CheckpointInterval() int {
	if f.CheckpointEvery == nil {
		return 50
	}
	return *f.CheckpointEvery
}

// ---------------------------------------------------------------------------
// Loading
// ---------------------------------------------------------------------------

// FileName is the default config file name.
const FileName = ".transbatch.yaml"

// Load reads and validates .transbatch.yaml from the given directory.
// Returns nil if no config file exists.
func Load(rootDir string) (*File, error) {
	path := filepath.Join(rootDir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	// Defaults
	if f.SourceLang == "" {
		f.SourceLang = "en"
	}
	if f.Engine == "" {
		f.Engine = "google"
	}

	// Validate targets
	for i := range f.Targets {
		t := &f.Targets[i]

		if t.Name == "" {
			return nil, fmt.Errorf("%s: target #%d has no name", path, i+1)
		}
		if t.Input == "" {
			return nil, fmt.Errorf("%s: target %q has no input", path, t.Name)
		}
		if t.Output == "" {
			return nil, fmt.Errorf("%s: target %q has no output", path, t.Name)
		}
		if len(t.TargetLangs) == 0 {
			t.TargetLangs = f.TargetLangs
		}
		if len(t.TargetLangs) == 0 {
			return nil, fmt.Errorf("%s: target %q has no target languages (set target_langs globally or per target)", path, t.Name)
		}
		if len(t.TargetLangs) > 1 && !strings.Contains(t.Output, "{lang}") {
			return nil, fmt.Errorf("%s: target %q has %d languages but its output pattern has no {lang}", path, t.Name, len(t.TargetLangs))
		}
	}

	switch f.Engine {
	case "google", "libre":
	default:
		return nil, fmt.Errorf("%s: unknown engine %q (valid: google, libre)", path, f.Engine)
	}

	return &f, nil
}

// ---------------------------------------------------------------------------
// Resolving targets
// ---------------------------------------------------------------------------

// ResolvedTarget is one (target, language) pair with absolute paths.
type ResolvedTarget struct {
	Target Target
	Lang   string
	// Input is the absolute input document path.
	Input string
	// Output is the absolute output path with {lang} substituted.
	Output string
}

// Resolve fans every target out to its per-language jobs with absolute
// paths, in config order.
func (f *File) Resolve(projectRoot string) ([]ResolvedTarget, error) {
	absRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, err
	}

	var resolved []ResolvedTarget
	for _, t := range f.Targets {
		input := filepath.Join(absRoot, t.Input)
		if _, err := os.Stat(input); err != nil {
			return nil, fmt.Errorf("target %q: input %s: %w", t.Name, t.Input, err)
		}
		for _, lang := range t.TargetLangs {
			out := strings.ReplaceAll(t.Output, "{lang}", lang)
			resolved = append(resolved, ResolvedTarget{
				Target: t,
				Lang:   lang,
				Input:  input,
				Output: filepath.Join(absRoot, out),
			})
		}
	}
	return resolved, nil
}

// AllLanguages returns the deduplicated, sorted union of all target
// languages.
func (f *File) AllLanguages() []string {
	seen := make(map[string]bool)
	var all []string
	for _, t := range f.Targets {
		langs := t.TargetLangs
		if len(langs) == 0 {
			langs = f.TargetLangs
		}
		for _, lang := range langs {
			if !seen[lang] {
				seen[lang] = true
				all = append(all, lang)
			}
		}
	}
	sort.Strings(all)
	return all
}
