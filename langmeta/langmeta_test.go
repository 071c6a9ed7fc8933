package langmeta

import (
	"sort"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "pt_br", want: "pt-BR"},
		{in: " EN-us ", want: "en-US"},
		{in: "ru", want: "ru"},
		{in: "ZH_tw", want: "zh-TW"},
		{in: "", want: ""},
	}

	for _, tc := range cases {
		if got := normalize(tc.in); got != tc.want {
			t.Fatalf("normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestResolve(t *testing.T) {
	t.Run("exact match", func(t *testing.T) {
		got := Resolve("zh-TW")
		if got.Name != "繁體中文" || got.Flag != "🇹🇼" {
			t.Fatalf("unexpected result: %#v", got)
		}
	})

	t.Run("normalized spelling", func(t *testing.T) {
		got := Resolve("pt_br")
		if got.Code != "pt-BR" || got.Name != "Português (Brasil)" {
			t.Fatalf("unexpected result: %#v", got)
		}
	})

	t.Run("variant falls back to base language", func(t *testing.T) {
		got := Resolve("fr-CA")
		if got.Code != "fr" || got.Name != "Français" {
			t.Fatalf("unexpected fallback result: %#v", got)
		}
	})

	t.Run("unknown passthrough", func(t *testing.T) {
		got := Resolve("zz-ZZ")
		if got.Code != "zz-ZZ" || got.Name != "zz-ZZ" || got.Flag != "" {
			t.Fatalf("unexpected unknown result: %#v", got)
		}
	})
}

func TestAllOrderedAndComplete(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("no supported languages")
	}
	if !sort.SliceIsSorted(all, func(i, j int) bool { return all[i].Code < all[j].Code }) {
		t.Fatal("All() is not in code order")
	}
	for _, l := range all {
		if l.Code == "" || l.Name == "" {
			t.Fatalf("incomplete entry: %#v", l)
		}
	}
	// Mutating the returned slice must not change later calls.
	all[0].Name = "changed"
	if All()[0].Name == "changed" {
		t.Fatal("All() exposes internal state")
	}
}
