// Package jsonfile implements reading and writing of flat key-value JSON
// translation dictionaries (the Transifex export format):
//
//	{
//	    "key.name": "Value to translate",
//	    "another.key": "Another value"
//	}
//
// Only string values are translatable; keys and non-string values pass
// through unchanged. Key order is preserved on round-trip.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File represents a parsed flat JSON translation dictionary.
type File struct {
	// keys holds all top-level keys in their original file order.
	keys []string
	// values maps key to its translatable string value.
	values map[string]string
	// raw maps key to the original JSON for non-string values, which are
	// written back verbatim.
	raw map[string]json.RawMessage
}

// ParseFile reads and parses a flat JSON dictionary from disk.
func ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return f, nil
}

// Parse parses flat JSON dictionary data, preserving key order.
func Parse(data []byte) (*File, error) {
	dec := json.NewDecoder(strings.NewReader(string(data)))

	t, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	if delim, ok := t.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected JSON object at root, got %v", t)
	}

	f := &File{
		values: make(map[string]string),
		raw:    make(map[string]json.RawMessage),
	}

	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
		key, ok := kt.(string)
		if !ok {
			return nil, fmt.Errorf("expected string key, got %T", kt)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("parsing value for key %q: %w", key, err)
		}

		f.keys = append(f.keys, key)
		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			f.values[key] = s
		} else {
			f.raw[key] = value
		}
	}

	return f, nil
}

// Keys returns the dictionary keys in their original order.
func (f *File) Keys() []string {
	return f.keys
}

// Value returns the string value for a key. ok is false for missing keys
// and for non-string values.
func (f *File) Value(key string) (value string, ok bool) {
	value, ok = f.values[key]
	return
}

// SetValue sets the string value for a key, appending the key if new.
func (f *File) SetValue(key, value string) {
	if _, exists := f.values[key]; !exists {
		if _, isRaw := f.raw[key]; !isRaw {
			f.keys = append(f.keys, key)
		} else {
			delete(f.raw, key)
		}
	}
	f.values[key] = value
}

// Stats returns (total, translated, untranslated) counts over the
// string-valued entries.
func (f *File) Stats() (total, translated, untranslated int) {
	total = len(f.values)
	for _, v := range f.values {
		if strings.TrimSpace(v) != "" {
			translated++
		} else {
			untranslated++
		}
	}
	return
}

// Marshal produces the JSON output with 2-space indentation, preserving
// key order and leaving non-ASCII text unescaped.
func (f *File) Marshal() ([]byte, error) {
	var b strings.Builder
	b.WriteString("{\n")

	for i, k := range f.keys {
		kj, err := encodeJSON(k)
		if err != nil {
			return nil, err
		}
		var vj string
		if raw, ok := f.raw[k]; ok {
			vj = string(raw)
		} else {
			vj, err = encodeJSON(f.values[k])
			if err != nil {
				return nil, err
			}
		}
		b.WriteString("  " + kj + ": " + vj)
		if i < len(f.keys)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}

	b.WriteString("}\n")
	return []byte(b.String()), nil
}

// WriteFile writes the dictionary back to disk.
func (f *File) WriteFile(path string) error {
	data, err := f.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// encodeJSON encodes a string as a JSON value without HTML escaping.
func encodeJSON(s string) (string, error) {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", err
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
