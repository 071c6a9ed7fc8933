package document

import (
	"fmt"

	"github.com/l10n-tools/transbatch/batch"
	"github.com/l10n-tools/transbatch/jsonfile"
)

// jsonUnit is one key of a flat JSON dictionary. The source text is the
// key's value in the input file; the translation replaces it in the
// output.
type jsonUnit struct {
	key    string
	source string
	doc    *JSONDocument
}

func (u *jsonUnit) ID() string     { return u.key }
func (u *jsonUnit) Source() string { return u.source }

func (u *jsonUnit) Target() string {
	if v, ok := u.doc.out.Value(u.key); ok && v != u.source {
		return v
	}
	// An output value identical to the source counts as untranslated:
	// a fresh output starts as a copy of the input.
	if v, ok := u.doc.translated[u.key]; ok {
		return v
	}
	return ""
}

func (u *jsonUnit) SetTarget(text string) {
	// Clearing a translation restores the source copy in the output:
	// untranslated keys carry their source value, never an empty string.
	if text == "" {
		u.doc.out.SetValue(u.key, u.source)
		delete(u.doc.translated, u.key)
		return
	}
	u.doc.out.SetValue(u.key, text)
	u.doc.translated[u.key] = text
}

// JSONDocument adapts a flat key-value JSON dictionary to the batch
// pipeline.
type JSONDocument struct {
	in  *jsonfile.File
	out *jsonfile.File
	// translated tracks values applied or resumed this run, so a
	// translation that happens to equal its source still counts as a
	// target.
	translated map[string]string
}

// LoadJSON loads a flat JSON dictionary input file. The output starts as
// a copy of the input so untranslated and non-string values carry over.
func LoadJSON(path string) (*JSONDocument, error) {
	in, err := jsonfile.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading JSON dictionary: %w", err)
	}
	out, err := jsonfile.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading JSON dictionary: %w", err)
	}
	return &JSONDocument{in: in, out: out, translated: make(map[string]string)}, nil
}

// File exposes the input dictionary, e.g. for statistics.
func (d *JSONDocument) File() *jsonfile.File { return d.in }

// MergeExisting implements Document: values from a previously written
// output file that differ from the input become the resume baseline.
func (d *JSONDocument) MergeExisting(path string) error {
	if !exists(path) {
		return nil
	}
	prior, err := jsonfile.ParseFile(path)
	if err != nil {
		return fmt.Errorf("loading existing output %s: %w", path, err)
	}
	for _, key := range d.in.Keys() {
		src, ok := d.in.Value(key)
		if !ok {
			continue
		}
		if v, ok := prior.Value(key); ok && v != "" && v != src {
			d.out.SetValue(key, v)
			d.translated[key] = v
		}
	}
	return nil
}

// Units implements batch.Document. Only string-valued keys of the input
// are units, in file order.
func (d *JSONDocument) Units() []batch.Unit {
	var units []batch.Unit
	for _, key := range d.in.Keys() {
		if src, ok := d.in.Value(key); ok {
			units = append(units, &jsonUnit{key: key, source: src, doc: d})
		}
	}
	return units
}

// Save implements batch.Document.
func (d *JSONDocument) Save(path string) error {
	data, err := d.out.Marshal()
	if err != nil {
		return err
	}
	return writeAtomic(path, data)
}
