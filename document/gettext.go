package document

import (
	"bytes"
	"fmt"

	"github.com/l10n-tools/transbatch/batch"
	"github.com/l10n-tools/transbatch/merge"
	po "github.com/l10n-tools/transbatch/pofile"
)

// poUnit is one translatable msgstr slot of a PO entry. Singular entries
// contribute one unit (msgid -> msgstr); plural entries contribute two
// (msgid -> msgstr[0], msgid_plural -> msgstr[1]). Further plural forms
// are left for a human translator: machine translation of a two-form
// source cannot fill a six-form Arabic paradigm.
type poUnit struct {
	entry      *po.Entry
	pluralForm int // -1 for singular
}

func (u *poUnit) ID() string {
	id := u.entry.MsgID
	if u.entry.MsgCtxt != "" {
		id = u.entry.MsgCtxt + "\x04" + id
	}
	if u.pluralForm > 0 {
		id += fmt.Sprintf("[%d]", u.pluralForm)
	}
	return id
}

func (u *poUnit) Source() string {
	if u.pluralForm > 0 {
		return u.entry.MsgIDPlural
	}
	return u.entry.MsgID
}

func (u *poUnit) Target() string {
	if u.pluralForm < 0 {
		return u.entry.MsgStr
	}
	return u.entry.MsgStrPlural[u.pluralForm]
}

func (u *poUnit) SetTarget(text string) {
	if u.pluralForm < 0 {
		u.entry.MsgStr = text
		return
	}
	if u.entry.MsgStrPlural == nil {
		u.entry.MsgStrPlural = make(map[int]string)
	}
	u.entry.MsgStrPlural[u.pluralForm] = text
}

// PODocument adapts a gettext PO file to the batch pipeline.
type PODocument struct {
	file       *po.File
	targetLang string
}

// LoadPO loads a PO (or POT) input file. The output header is stamped
// with the target language and its plural formula on save.
func LoadPO(path, targetLang string) (*PODocument, error) {
	f, err := po.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading PO file %s: %w", path, err)
	}
	return &PODocument{file: f, targetLang: targetLang}, nil
}

// File exposes the underlying PO file, e.g. for statistics.
func (d *PODocument) File() *po.File { return d.file }

// MergeExisting implements Document. Resume for PO files is a merge:
// translations from the prior output overlay the fresh input, keyed by
// (msgctxt, msgid).
func (d *PODocument) MergeExisting(path string) error {
	if !exists(path) {
		return nil
	}
	prior, err := po.ParseFile(path)
	if err != nil {
		return fmt.Errorf("loading existing output %s: %w", path, err)
	}
	d.file = merge.Resume(d.file, prior)
	return nil
}

// Units implements batch.Document. The header entry and obsolete entries
// are not translatable units.
func (d *PODocument) Units() []batch.Unit {
	var units []batch.Unit
	for _, e := range d.file.Entries {
		if e.MsgID == "" || e.Obsolete {
			continue
		}
		if e.MsgIDPlural == "" {
			units = append(units, &poUnit{entry: e, pluralForm: -1})
		} else {
			units = append(units, &poUnit{entry: e, pluralForm: 0})
			units = append(units, &poUnit{entry: e, pluralForm: 1})
		}
	}
	return units
}

// Save implements batch.Document. The header is updated for the target
// language before writing.
func (d *PODocument) Save(path string) error {
	if d.targetLang != "" {
		d.file.SetHeaderField("Language", d.targetLang)
		d.file.SetHeaderField("Plural-Forms", po.PluralFormsForLang(d.targetLang))
		d.file.SetHeaderField("Content-Type", "text/plain; charset=UTF-8")
		d.file.SetHeaderField("Content-Transfer-Encoding", "8bit")
	}
	var buf bytes.Buffer
	if err := d.file.Write(&buf); err != nil {
		return err
	}
	return writeAtomic(path, buf.Bytes())
}
