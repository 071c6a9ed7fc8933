// Package merge builds the resume baseline for interrupted PO
// translation runs: translations already present in a previously written
// output file are overlaid onto a freshly loaded input file.
package merge

import (
	po "github.com/l10n-tools/transbatch/pofile"
)

// entryKey identifies an entry by context and msgid, the PO uniqueness
// rule.
func entryKey(e *po.Entry) string {
	return e.MsgCtxt + "\x04" + e.MsgID
}

// Resume returns a copy of input whose entries carry the translations
// already present in prior. The input file defines the unit set and all
// metadata (comments, references, flags); prior contributes only the
// translations, and only where the input entry has none of its own.
// Entries that exist solely in prior are dropped: the input document is
// the source of truth for what gets translated.
func Resume(input, prior *po.File) *po.File {
	result := po.NewFile()
	if input.Header != nil {
		header := *input.Header
		result.Header = &header
	}

	priorByKey := make(map[string]*po.Entry)
	for _, e := range prior.Entries {
		if !e.Obsolete {
			priorByKey[entryKey(e)] = e
		}
	}

	for _, e := range input.Entries {
		copied := *e
		if copied.MsgStrPlural != nil {
			copied.MsgStrPlural = make(map[int]string, len(e.MsgStrPlural))
			for i, v := range e.MsgStrPlural {
				copied.MsgStrPlural[i] = v
			}
		}

		if p, ok := priorByKey[entryKey(e)]; ok {
			if copied.MsgStr == "" && p.MsgStr != "" {
				copied.MsgStr = p.MsgStr
			}
			if copied.MsgIDPlural != "" && len(p.MsgStrPlural) > 0 && !hasPluralTranslation(&copied) {
				if copied.MsgStrPlural == nil {
					copied.MsgStrPlural = make(map[int]string)
				}
				for i, v := range p.MsgStrPlural {
					if v != "" {
						copied.MsgStrPlural[i] = v
					}
				}
			}
		}

		result.Entries = append(result.Entries, &copied)
	}

	return result
}

// hasPluralTranslation reports whether any plural form is filled in.
func hasPluralTranslation(e *po.Entry) bool {
	for _, v := range e.MsgStrPlural {
		if v != "" {
			return true
		}
	}
	return false
}
