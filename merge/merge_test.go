package merge

import (
	"testing"

	po "github.com/l10n-tools/transbatch/pofile"
)

func TestResumeOverlaysPriorTranslations(t *testing.T) {
	input := po.NewFile()
	input.Entries = []*po.Entry{
		{MsgID: "hello", References: []string{"app.go:1"}},
		{MsgID: "bye"},
		{MsgID: "new entry"},
	}

	prior := po.NewFile()
	prior.Entries = []*po.Entry{
		{MsgID: "hello", MsgStr: "bonjour"},
		{MsgID: "bye", MsgStr: ""},
		{MsgID: "dropped", MsgStr: "gone"},
	}

	merged := Resume(input, prior)

	if len(merged.Entries) != 3 {
		t.Fatalf("entries = %d, want 3 (prior-only entries dropped)", len(merged.Entries))
	}
	if e := merged.EntryByMsgID("hello"); e == nil || e.MsgStr != "bonjour" {
		t.Fatalf("hello = %#v, want prior translation kept", e)
	}
	if e := merged.EntryByMsgID("hello"); len(e.References) != 1 {
		t.Fatal("input metadata lost during resume merge")
	}
	if e := merged.EntryByMsgID("bye"); e.MsgStr != "" {
		t.Fatalf("bye = %q, want still untranslated", e.MsgStr)
	}
	if merged.EntryByMsgID("dropped") != nil {
		t.Fatal("entry absent from input must not reappear from prior output")
	}
}

func TestResumeInputTranslationWins(t *testing.T) {
	input := po.NewFile()
	input.Entries = []*po.Entry{{MsgID: "hello", MsgStr: "salut"}}
	prior := po.NewFile()
	prior.Entries = []*po.Entry{{MsgID: "hello", MsgStr: "bonjour"}}

	merged := Resume(input, prior)
	if e := merged.EntryByMsgID("hello"); e.MsgStr != "salut" {
		t.Fatalf("hello = %q, input translation must win", e.MsgStr)
	}
}

func TestResumeDistinguishesContexts(t *testing.T) {
	input := po.NewFile()
	input.Entries = []*po.Entry{
		{MsgCtxt: "menu", MsgID: "Open"},
		{MsgCtxt: "dialog", MsgID: "Open"},
	}
	prior := po.NewFile()
	prior.Entries = []*po.Entry{
		{MsgCtxt: "menu", MsgID: "Open", MsgStr: "Ouvrir (menu)"},
	}

	merged := Resume(input, prior)
	if merged.Entries[0].MsgStr != "Ouvrir (menu)" {
		t.Fatalf("menu entry = %q", merged.Entries[0].MsgStr)
	}
	if merged.Entries[1].MsgStr != "" {
		t.Fatalf("dialog entry = %q, want untranslated", merged.Entries[1].MsgStr)
	}
}

func TestResumePluralForms(t *testing.T) {
	input := po.NewFile()
	input.Entries = []*po.Entry{
		{MsgID: "%d file", MsgIDPlural: "%d files", MsgStrPlural: map[int]string{}},
	}
	prior := po.NewFile()
	prior.Entries = []*po.Entry{
		{MsgID: "%d file", MsgIDPlural: "%d files",
			MsgStrPlural: map[int]string{0: "%d fichier", 1: "%d fichiers"}},
	}

	merged := Resume(input, prior)
	got := merged.Entries[0].MsgStrPlural
	if got[0] != "%d fichier" || got[1] != "%d fichiers" {
		t.Fatalf("plural forms = %v", got)
	}

	// The overlay must be a copy, not an alias of the prior map.
	merged.Entries[0].MsgStrPlural[0] = "changed"
	if prior.Entries[0].MsgStrPlural[0] != "%d fichier" {
		t.Fatal("resume merge aliased the prior plural map")
	}
}
