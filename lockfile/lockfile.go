// Package lockfile implements transbatch.lock — a lock file that tracks
// MD5 checksums of source strings per output target. This enables change
// detection: a unit whose source text changed since its last translation
// is re-translated even though the output file already carries a value
// for it.
//
// The lock file is stored alongside .transbatch.yaml as transbatch.lock.
package lockfile

import (
	"crypto/md5"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// LockFileName is the default lock file name.
const LockFileName = "transbatch.lock"

// Version is the lock file format version.
const Version = 1

// LockFile represents the transbatch.lock file structure.
type LockFile struct {
	Version   int                          `yaml:"version"`
	Checksums map[string]map[string]string `yaml:"checksums"` // target -> unit ID -> md5

	mu   sync.Mutex `yaml:"-"`
	path string     `yaml:"-"`
}

// ---------------------------------------------------------------------------
// Loading and saving
// ---------------------------------------------------------------------------

// Load reads a lock file from the given directory.
// Returns an empty lock file if the file doesn't exist.
func Load(dir string) (*LockFile, error) {
	path := filepath.Join(dir, LockFileName)
	lf := &LockFile{
		Version:   Version,
		Checksums: make(map[string]map[string]string),
		path:      path,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return lf, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, lf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	lf.path = path

	if lf.Checksums == nil {
		lf.Checksums = make(map[string]map[string]string)
	}

	return lf, nil
}

// Save writes the lock file to disk.
func (lf *LockFile) Save() error {
	lf.mu.Lock()
	defer lf.mu.Unlock()

	if lf.path == "" {
		return fmt.Errorf("lock file path not set")
	}

	data, err := yaml.Marshal(lf)
	if err != nil {
		return fmt.Errorf("marshaling lock file: %w", err)
	}

	if err := os.WriteFile(lf.path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", lf.path, err)
	}

	return nil
}

// Path returns the lock file path.
func (lf *LockFile) Path() string {
	return lf.path
}

// ---------------------------------------------------------------------------
// Checksum operations
// ---------------------------------------------------------------------------

// Hash computes the MD5 hex digest of a string.
func Hash(s string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(s)))
}

// TargetKey builds a unique lock key from an output file path,
// e.g. "locales/fr.po".
func TargetKey(filePath string) string {
	return filepath.ToSlash(filePath)
}

// IsChanged checks if a source string has changed since last translation.
// Returns true if the unit is new or its source content has changed.
func (lf *LockFile) IsChanged(target, unitID, source string) bool {
	lf.mu.Lock()
	defer lf.mu.Unlock()

	units, ok := lf.Checksums[target]
	if !ok {
		return true
	}
	oldHash, ok := units[unitID]
	if !ok {
		return true
	}
	return oldHash != Hash(source)
}

// Update records the checksum of a source string after successful
// translation.
func (lf *LockFile) Update(target, unitID, source string) {
	lf.mu.Lock()
	defer lf.mu.Unlock()

	if lf.Checksums[target] == nil {
		lf.Checksums[target] = make(map[string]string)
	}
	lf.Checksums[target][unitID] = Hash(source)
}

// UpdateBatch records checksums for multiple units at once. The input is
// a map of unit ID -> source text.
func (lf *LockFile) UpdateBatch(target string, entries map[string]string) {
	lf.mu.Lock()
	defer lf.mu.Unlock()

	if lf.Checksums[target] == nil {
		lf.Checksums[target] = make(map[string]string)
	}
	for unitID, source := range entries {
		lf.Checksums[target][unitID] = Hash(source)
	}
}

// Clean removes entries from the lock file that are no longer present in
// the current set of unit IDs. This prevents stale entries from
// accumulating.
func (lf *LockFile) Clean(target string, currentIDs []string) {
	lf.mu.Lock()
	defer lf.mu.Unlock()

	existing := lf.Checksums[target]
	if existing == nil {
		return
	}

	valid := make(map[string]bool, len(currentIDs))
	for _, id := range currentIDs {
		valid[id] = true
	}

	for id := range existing {
		if !valid[id] {
			delete(existing, id)
		}
	}
}

// RemoveTarget removes all checksums for a target.
func (lf *LockFile) RemoveTarget(target string) {
	lf.mu.Lock()
	defer lf.mu.Unlock()
	delete(lf.Checksums, target)
}

// ---------------------------------------------------------------------------
// Stats
// ---------------------------------------------------------------------------

// Stats returns the number of targets and total units in the lock file.
func (lf *LockFile) Stats() (targets, units int) {
	lf.mu.Lock()
	defer lf.mu.Unlock()

	targets = len(lf.Checksums)
	for _, m := range lf.Checksums {
		units += len(m)
	}
	return
}

// Targets returns the sorted list of target keys.
func (lf *LockFile) Targets() []string {
	lf.mu.Lock()
	defer lf.mu.Unlock()

	targets := make([]string, 0, len(lf.Checksums))
	for t := range lf.Checksums {
		targets = append(targets, t)
	}
	sort.Strings(targets)
	return targets
}

// Summary returns a human-readable summary string.
func (lf *LockFile) Summary() string {
	targets, units := lf.Stats()
	if targets == 0 {
		return "empty"
	}

	var parts []string
	for _, t := range lf.Targets() {
		n := len(lf.Checksums[t])
		parts = append(parts, fmt.Sprintf("%s: %d units", t, n))
	}
	return fmt.Sprintf("%d targets, %d units (%s)", targets, units, strings.Join(parts, ", "))
}
