package document

import (
	"fmt"

	"github.com/l10n-tools/transbatch/batch"
	"github.com/l10n-tools/transbatch/yamlfile"
)

// yamlUnit is one leaf key of a YAML locale file, addressed by its
// dotted path.
type yamlUnit struct {
	key    string
	source string
	doc    *YAMLDocument
}

func (u *yamlUnit) ID() string     { return u.key }
func (u *yamlUnit) Source() string { return u.source }

func (u *yamlUnit) Target() string {
	if v, ok := u.doc.out.Get(u.key); ok && v != u.source {
		return v
	}
	if v, ok := u.doc.translated[u.key]; ok {
		return v
	}
	return ""
}

func (u *yamlUnit) SetTarget(text string) {
	// Clearing a translation restores the source copy in the output.
	if text == "" {
		u.doc.out.Set(u.key, u.source)
		delete(u.doc.translated, u.key)
		return
	}
	u.doc.out.Set(u.key, text)
	u.doc.translated[u.key] = text
}

// YAMLDocument adapts a nested YAML locale file to the batch pipeline.
// Leaf scalars become units; structure and comments are preserved on
// write.
type YAMLDocument struct {
	in         *yamlfile.File
	out        *yamlfile.File
	translated map[string]string
}

// LoadYAML loads a YAML locale input file. The output starts as a copy
// of the input.
func LoadYAML(path string) (*YAMLDocument, error) {
	in, err := yamlfile.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading YAML locale file: %w", err)
	}
	out, err := yamlfile.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading YAML locale file: %w", err)
	}
	return &YAMLDocument{in: in, out: out, translated: make(map[string]string)}, nil
}

// File exposes the input file, e.g. for statistics.
func (d *YAMLDocument) File() *yamlfile.File { return d.in }

// MergeExisting implements Document: values from a previously written
// output file that differ from the input become the resume baseline.
func (d *YAMLDocument) MergeExisting(path string) error {
	if !exists(path) {
		return nil
	}
	prior, err := yamlfile.ParseFile(path)
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

// Units implements batch.Document, in file order.
func (d *YAMLDocument) Units() []batch.Unit {
	var units []batch.Unit
	for _, key := range d.in.Keys() {
		if src, ok := d.in.Get(key); ok {
			units = append(units, &yamlUnit{key: key, source: src, doc: d})
		}
	}
	return units
}

// Save implements batch.Document.
func (d *YAMLDocument) Save(path string) error {
	data, err := d.out.Marshal()
	if err != nil {
		return err
	}
	return writeAtomic(path, data)
}
