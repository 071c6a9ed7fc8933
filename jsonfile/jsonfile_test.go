package jsonfile

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParsePreservesKeyOrder(t *testing.T) {
	data := []byte(`{
  "zebra": "Zebra",
  "apple": "Apple",
  "mango": "Mango"
}`)
	f, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []string{"zebra", "apple", "mango"}
	if !reflect.DeepEqual(f.Keys(), want) {
		t.Fatalf("Keys = %v, want %v", f.Keys(), want)
	}
}

func TestParseRejectsNonObjectRoot(t *testing.T) {
	if _, err := Parse([]byte(`["a","b"]`)); err == nil {
		t.Fatal("array root must be rejected")
	}
}

func TestNonStringValuesPassThrough(t *testing.T) {
	data := []byte(`{
  "title": "Hello",
  "count": 42,
  "nested": {"a": 1}
}`)
	f, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, ok := f.Value("count"); ok {
		t.Fatal("numeric value must not be translatable")
	}
	if v, ok := f.Value("title"); !ok || v != "Hello" {
		t.Fatalf("Value(title) = %q,%v", v, ok)
	}

	out, err := f.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(out), `"count": 42`) {
		t.Fatalf("non-string value lost on round-trip:\n%s", out)
	}
	if !strings.Contains(string(out), `{"a": 1}`) {
		t.Fatalf("nested value lost on round-trip:\n%s", out)
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "fr.json")

	f, err := Parse([]byte(`{"k1": "Hello {name}", "k2": "Bye"}`))
	if err != nil {
		t.Fatal(err)
	}
	f.SetValue("k1", "Bonjour {name}")
	f.SetValue("k2", "Au revoir")

	if err := f.WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	round, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if v, _ := round.Value("k1"); v != "Bonjour {name}" {
		t.Fatalf("k1 = %q", v)
	}
	if v, _ := round.Value("k2"); v != "Au revoir" {
		t.Fatalf("k2 = %q", v)
	}
	if !reflect.DeepEqual(round.Keys(), []string{"k1", "k2"}) {
		t.Fatalf("key order lost: %v", round.Keys())
	}
}

func TestMarshalKeepsUnicodeReadable(t *testing.T) {
	f, err := Parse([]byte(`{"greeting": "x"}`))
	if err != nil {
		t.Fatal(err)
	}
	f.SetValue("greeting", "Привет <b>мир</b>")

	out, err := f.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "Привет <b>мир</b>") {
		t.Fatalf("unicode or markup escaped in output:\n%s", out)
	}
}

func TestStats(t *testing.T) {
	f, err := Parse([]byte(`{"a": "done", "b": "", "c": "  ", "n": 1}`))
	if err != nil {
		t.Fatal(err)
	}
	total, translated, untranslated := f.Stats()
	if total != 3 || translated != 1 || untranslated != 2 {
		t.Fatalf("Stats = %d,%d,%d, want 3,1,2", total, translated, untranslated)
	}
}

func TestParseFileMissing(t *testing.T) {
	if _, err := ParseFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("missing input file must be an error")
	}
	if _, err := os.Stat("nope.json"); err == nil {
		t.Fatal("test touched the working directory")
	}
}
