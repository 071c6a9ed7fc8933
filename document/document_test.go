package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"messages.po", FormatPO, true},
		{"template.POT", FormatPO, true},
		{"en.json", FormatJSON, true},
		{"config.yaml", FormatYAML, true},
		{"config.yml", FormatYAML, true},
		{"messages_en.properties", FormatProperties, true},
		{"notes.txt", "", false},
		{"noextension", "", false},
	}
	for _, tt := range tests {
		got, err := DetectFormat(tt.path)
		if tt.ok && err != nil {
			t.Errorf("DetectFormat(%q) error: %v", tt.path, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("DetectFormat(%q) expected error", tt.path)
		}
		if got != tt.want {
			t.Errorf("DetectFormat(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

const samplePO = `msgid ""
msgstr ""
"Project-Id-Version: demo 1.0\n"
"Content-Type: text/plain; charset=UTF-8\n"

msgid "Hello"
msgstr ""

msgctxt "menu"
msgid "Open"
msgstr ""

msgid "One file"
msgid_plural "%d files"
msgstr[0] ""
msgstr[1] ""

#~ msgid "Removed"
#~ msgstr "Supprimé"
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPODocumentUnits(t *testing.T) {
	doc, err := LoadPO(writeTemp(t, "in.po", samplePO), "fr")
	if err != nil {
		t.Fatal(err)
	}
	units := doc.Units()
	// Hello, menu\x04Open, plural form 0 and 1. Header and obsolete
	// entries are excluded.
	if len(units) != 4 {
		t.Fatalf("got %d units, want 4", len(units))
	}
	wantIDs := []string{"Hello", "menu\x04Open", "One file", "One file[1]"}
	wantSources := []string{"Hello", "Open", "One file", "%d files"}
	for i, u := range units {
		if u.ID() != wantIDs[i] {
			t.Errorf("unit %d: ID = %q, want %q", i, u.ID(), wantIDs[i])
		}
		if u.Source() != wantSources[i] {
			t.Errorf("unit %d: Source = %q, want %q", i, u.Source(), wantSources[i])
		}
		if u.Target() != "" {
			t.Errorf("unit %d: Target = %q, want empty", i, u.Target())
		}
	}
}

func TestPODocumentSaveStampsHeader(t *testing.T) {
	doc, err := LoadPO(writeTemp(t, "in.po", samplePO), "de")
	if err != nil {
		t.Fatal(err)
	}
	units := doc.Units()
	units[0].SetTarget("Hallo")
	units[2].SetTarget("Eine Datei")
	units[3].SetTarget("%d Dateien")

	out := filepath.Join(t.TempDir(), "out", "de.po")
	if err := doc.Save(out); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	for _, want := range []string{
		`"Language: de\n"`,
		"msgstr \"Hallo\"",
		"msgstr[0] \"Eine Datei\"",
		"msgstr[1] \"%d Dateien\"",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if _, err := os.Stat(out + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after save")
	}
}

func TestPODocumentMergeExisting(t *testing.T) {
	prior := `msgid ""
msgstr ""
"Language: fr\n"

msgid "Hello"
msgstr "Bonjour"

msgid "Gone"
msgstr "Parti"
`
	doc, err := LoadPO(writeTemp(t, "in.po", samplePO), "fr")
	if err != nil {
		t.Fatal(err)
	}
	if err := doc.MergeExisting(writeTemp(t, "prior.po", prior)); err != nil {
		t.Fatal(err)
	}

	units := doc.Units()
	if got := units[0].Target(); got != "Bonjour" {
		t.Errorf("resumed target = %q, want %q", got, "Bonjour")
	}
	// Entries only present in the prior output do not come back.
	if doc.File().EntryByMsgID("Gone") != nil {
		t.Error("stale entry resurrected by merge")
	}

	// A missing prior output is not an error.
	if err := doc.MergeExisting(filepath.Join(t.TempDir(), "absent.po")); err != nil {
		t.Errorf("missing prior output: %v", err)
	}
}

func TestJSONDocumentRoundTrip(t *testing.T) {
	in := writeTemp(t, "en.json", `{
  "greeting": "Hello {name}",
  "farewell": "Goodbye",
  "count": 42
}`)
	doc, err := LoadJSON(in)
	if err != nil {
		t.Fatal(err)
	}
	units := doc.Units()
	if len(units) != 2 {
		t.Fatalf("got %d units, want 2 (non-string values are not units)", len(units))
	}
	if units[0].ID() != "greeting" || units[0].Source() != "Hello {name}" {
		t.Errorf("unexpected first unit: %q / %q", units[0].ID(), units[0].Source())
	}
	if units[0].Target() != "" {
		t.Errorf("fresh unit has target %q", units[0].Target())
	}

	units[0].SetTarget("Bonjour {name}")
	if units[0].Target() != "Bonjour {name}" {
		t.Errorf("Target after SetTarget = %q", units[0].Target())
	}

	out := filepath.Join(t.TempDir(), "fr.json")
	if err := doc.Save(out); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	if !strings.Contains(text, `"greeting": "Bonjour {name}"`) {
		t.Errorf("translated value missing from output:\n%s", text)
	}
	if !strings.Contains(text, `"farewell": "Goodbye"`) {
		t.Errorf("untranslated value not carried over:\n%s", text)
	}
	if !strings.Contains(text, `"count": 42`) {
		t.Errorf("non-string value not preserved:\n%s", text)
	}
}

func TestJSONDocumentMergeExisting(t *testing.T) {
	in := writeTemp(t, "en.json", `{"a": "Apple", "b": "Banana"}`)
	prior := writeTemp(t, "fr.json", `{"a": "Pomme", "b": "Banana"}`)

	doc, err := LoadJSON(in)
	if err != nil {
		t.Fatal(err)
	}
	if err := doc.MergeExisting(prior); err != nil {
		t.Fatal(err)
	}
	units := doc.Units()
	if got := units[0].Target(); got != "Pomme" {
		t.Errorf("resumed target = %q, want %q", got, "Pomme")
	}
	// A prior value identical to the source is still untranslated.
	if got := units[1].Target(); got != "" {
		t.Errorf("source-equal prior value treated as translation: %q", got)
	}
}

func TestJSONDocumentClearTargetRestoresSource(t *testing.T) {
	in := writeTemp(t, "en.json", `{"a": "Apple"}`)
	doc, err := LoadJSON(in)
	if err != nil {
		t.Fatal(err)
	}
	u := doc.Units()[0]
	u.SetTarget("Pomme")
	u.SetTarget("")
	if got := u.Target(); got != "" {
		t.Errorf("cleared target = %q", got)
	}

	out := filepath.Join(t.TempDir(), "fr.json")
	if err := doc.Save(out); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"a": "Apple"`) {
		t.Errorf("cleared key should carry source value:\n%s", data)
	}
}

func TestYAMLDocumentRoundTrip(t *testing.T) {
	in := writeTemp(t, "en.yml", `en:
  nav:
    home: "Home"
    about: "About us"
`)
	doc, err := LoadYAML(in)
	if err != nil {
		t.Fatal(err)
	}
	units := doc.Units()
	if len(units) != 2 {
		t.Fatalf("got %d units, want 2", len(units))
	}
	if units[0].ID() != "nav.home" {
		t.Errorf("first unit ID = %q, want %q", units[0].ID(), "nav.home")
	}
	units[0].SetTarget("Accueil")

	out := filepath.Join(t.TempDir(), "fr.yml")
	if err := doc.Save(out); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Accueil") {
		t.Errorf("translated value missing from output:\n%s", data)
	}
}

func TestYAMLDocumentMergeExisting(t *testing.T) {
	in := writeTemp(t, "en.yml", "greeting: \"Hello\"\nfarewell: \"Bye\"\n")
	prior := writeTemp(t, "fr.yml", "greeting: \"Salut\"\nfarewell: \"Bye\"\n")

	doc, err := LoadYAML(in)
	if err != nil {
		t.Fatal(err)
	}
	if err := doc.MergeExisting(prior); err != nil {
		t.Fatal(err)
	}
	units := doc.Units()
	if got := units[0].Target(); got != "Salut" {
		t.Errorf("resumed target = %q, want %q", got, "Salut")
	}
	if got := units[1].Target(); got != "" {
		t.Errorf("source-equal prior value treated as translation: %q", got)
	}
}

func TestPropDocumentRoundTrip(t *testing.T) {
	in := writeTemp(t, "en.properties", "# app strings\n\ngreeting=Hello %s\nempty=\n")
	doc, err := LoadProperties(in)
	if err != nil {
		t.Fatal(err)
	}
	units := doc.Units()
	if len(units) != 1 {
		t.Fatalf("got %d units, want 1 (empty values are not units)", len(units))
	}
	if units[0].ID() != "greeting" || units[0].Source() != "Hello %s" {
		t.Errorf("unexpected unit: %q / %q", units[0].ID(), units[0].Source())
	}

	units[0].SetTarget("Bonjour %s")
	out := filepath.Join(t.TempDir(), "fr.properties")
	if err := doc.Save(out); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	if !strings.Contains(text, "greeting=Bonjour %s") {
		t.Errorf("translated value missing:\n%s", text)
	}
	if !strings.Contains(text, "# app strings") {
		t.Errorf("comment not preserved:\n%s", text)
	}
}

func TestPropDocumentMergeExisting(t *testing.T) {
	in := writeTemp(t, "en.properties", "a=Apple\nb=Banana\n")
	prior := writeTemp(t, "fr.properties", "a=Pomme\nb=Banana\n")

	doc, err := LoadProperties(in)
	if err != nil {
		t.Fatal(err)
	}
	if err := doc.MergeExisting(prior); err != nil {
		t.Fatal(err)
	}
	units := doc.Units()
	if got := units[0].Target(); got != "Pomme" {
		t.Errorf("resumed target = %q, want %q", got, "Pomme")
	}
	if got := units[1].Target(); got != "" {
		t.Errorf("source-equal prior value treated as translation: %q", got)
	}
}

func TestLoadDispatch(t *testing.T) {
	po := writeTemp(t, "x.po", samplePO)
	if _, err := Load(po, FormatPO, "fr"); err != nil {
		t.Errorf("Load PO: %v", err)
	}
	js := writeTemp(t, "x.json", `{"k": "v"}`)
	if _, err := Load(js, FormatJSON, "fr"); err != nil {
		t.Errorf("Load JSON: %v", err)
	}
	if _, err := Load(js, Format("ini"), "fr"); err == nil {
		t.Error("unsupported format accepted")
	}
}
