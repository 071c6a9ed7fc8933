package document

import (
	"fmt"

	"github.com/l10n-tools/transbatch/batch"
	"github.com/l10n-tools/transbatch/propfile"
)

// propUnit is one key of a Java .properties file.
type propUnit struct {
	key    string
	source string
	doc    *PropDocument
}

func (u *propUnit) ID() string     { return u.key }
func (u *propUnit) Source() string { return u.source }

func (u *propUnit) Target() string {
	if v, ok := u.doc.out.Get(u.key); ok && v != u.source {
		return v
	}
	if v, ok := u.doc.translated[u.key]; ok {
		return v
	}
	return ""
}

func (u *propUnit) SetTarget(text string) {
	// Clearing a translation restores the source copy in the output.
	if text == "" {
		u.doc.out.Set(u.key, u.source)
		delete(u.doc.translated, u.key)
		return
	}
	u.doc.out.Set(u.key, text)
	u.doc.translated[u.key] = text
}

// PropDocument adapts a Java .properties file to the batch pipeline.
// Comments and blank lines are preserved on write.
type PropDocument struct {
	in         *propfile.File
	out        *propfile.File
	translated map[string]string
}

// LoadProperties loads a .properties input file. The output starts as a
// copy of the input.
func LoadProperties(path string) (*PropDocument, error) {
	in, err := propfile.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading properties file: %w", err)
	}
	out, err := propfile.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading properties file: %w", err)
	}
	return &PropDocument{in: in, out: out, translated: make(map[string]string)}, nil
}

// File exposes the input file, e.g. for statistics.
func (d *PropDocument) File() *propfile.File { return d.in }

// MergeExisting implements Document: values from a previously written
// output file that differ from the input become the resume baseline.
func (d *PropDocument) MergeExisting(path string) error {
	if !exists(path) {
		return nil
	}
	prior, err := propfile.ParseFile(path)
	if err != nil {
		return fmt.Errorf("loading existing output %s: %w", path, err)
	}
	for _, key := range d.in.Keys() {
		src, ok := d.in.Get(key)
		if !ok {
			continue
		}
		if v, ok := prior.Get(key); ok && v != "" && v != src {
			d.out.Set(key, v)
			d.translated[key] = v
		}
	}
	return nil
}

// Units implements batch.Document, in file order. Keys with empty
// source values are not units.
func (d *PropDocument) Units() []batch.Unit {
	var units []batch.Unit
	for _, key := range d.in.Keys() {
		if src, ok := d.in.Get(key); ok && src != "" {
			units = append(units, &propUnit{key: key, source: src, doc: d})
		}
	}
	return units
}

// Save implements batch.Document.
func (d *PropDocument) Save(path string) error {
	data, err := d.out.Marshal()
	if err != nil {
		return err
	}
	return writeAtomic(path, data)
}
