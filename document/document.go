// Package document adapts the concrete file formats (gettext PO, flat
// JSON, YAML dictionaries, Java properties) to the uniform Document
// abstraction the batch orchestrator processes: an ordered sequence of
// translatable units with stable identity.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/l10n-tools/transbatch/batch"
)

// Format identifies a supported file format.
type Format string

const (
	FormatPO         Format = "po"
	FormatJSON       Format = "json"
	FormatYAML       Format = "yaml"
	FormatProperties Format = "properties"
)

// Document extends batch.Document with resume support: translations
// already present in a previously written output file become part of the
// skip baseline.
type Document interface {
	batch.Document

	// MergeExisting overlays the translations found in a previously
	// written output file at path. A missing file is not an error - the
	// run simply starts fresh. The output document always wins over the
	// cache for skip decisions.
	MergeExisting(path string) error
}

// DetectFormat guesses the format from a file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".po", ".pot":
		return FormatPO, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".properties":
		return FormatProperties, nil
	}
	return "", fmt.Errorf("cannot detect format of %s (expected .po, .json, .yaml, .properties)", path)
}

// Load opens an input file as a Document of the given format.
// targetLang is recorded in format metadata where the format carries it
// (the PO header).
func Load(path string, format Format, targetLang string) (Document, error) {
	switch format {
	case FormatPO:
		return LoadPO(path, targetLang)
	case FormatJSON:
		return LoadJSON(path)
	case FormatYAML:
		return LoadYAML(path)
	case FormatProperties:
		return LoadProperties(path)
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}

// exists reports whether path names an existing file.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// writeAtomic writes data to path through a temp-then-rename step, so a
// failed or interrupted save never leaves a partial output document.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
