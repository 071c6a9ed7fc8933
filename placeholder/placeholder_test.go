package placeholder

import (
	"strings"
	"testing"
)

func TestShieldRoundTrip(t *testing.T) {
	texts := []string{
		"",
		"plain text with no placeholders",
		"Hello {name}",
		"Hello %(name)s, you have %d messages",
		"%s of %s complete (%.2f%%)",
		"Click <a href=\"/home\">here</a> to continue",
		"Line one\nLine two with {0}\nLine three",
		"<b>bold</b> and <br/> and </i>",
		"{first}{second}{third}",
		"mixed %(a)s and {b} and <c> in one line",
		"progress: {percent:.2%} done",
		"unbalanced < and > stay put",
		"a < 3 and b > 5",
		"%(count)03d items",
		"  padded {x}  ",
	}

	for _, text := range texts {
		masked, m := Shield(text)
		if got := Unshield(masked, m); got != text {
			t.Errorf("round trip failed:\n  text:   %q\n  masked: %q\n  got:    %q", text, masked, got)
		}
	}
}

func TestShieldMasksAllGrammars(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		hidden []string // substrings that must not survive in masked text
	}{
		{"brace", "Hello {name}!", []string{"{name}"}},
		{"brace positional", "Item {0} of {1}", []string{"{0}", "{1}"}},
		{"printf", "Got %d of %s (%.1f)", []string{"%d", "%s", "%.1f"}},
		{"printf named", "Hi %(user)s, %(n)d new", []string{"%(user)s", "%(n)d"}},
		{"tag", "<b>Save</b> changes", []string{"<b>", "</b>"}},
		{"self-closing tag", "line<br/>break", []string{"<br/>"}},
		{"tag with attrs", `See <a href="x">docs</a>`, []string{`<a href="x">`, "</a>"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			masked, m := Shield(tt.text)
			for _, h := range tt.hidden {
				if strings.Contains(masked, h) {
					t.Errorf("masked text %q still contains %q", masked, h)
				}
			}
			if len(m) < len(tt.hidden) {
				t.Errorf("map has %d replacements, want at least %d", len(m), len(tt.hidden))
			}
		})
	}
}

func TestShieldNoPlaceholders(t *testing.T) {
	masked, m := Shield("nothing to see here")
	if masked != "nothing to see here" {
		t.Errorf("masked = %q, want unchanged text", masked)
	}
	if len(m) != 0 {
		t.Errorf("map should be empty, got %d entries", len(m))
	}
}

func TestShieldMalformedLeftUntouched(t *testing.T) {
	tests := []struct {
		text string
		keep string // must appear verbatim in the masked text
	}{
		{"price < 100 and > 50", "< 100 and > 50"},
		{"open < never closed", "< never closed"},
		{"lonely % sign", "% sign"},
		{"empty braces {} stay", "{} stay"},
	}

	for _, tt := range tests {
		masked, _ := Shield(tt.text)
		if !strings.Contains(masked, tt.keep) {
			t.Errorf("Shield(%q) = %q, want %q kept verbatim", tt.text, masked, tt.keep)
		}
	}
}

func TestShieldTokensAreOpaque(t *testing.T) {
	// Marker tokens must be digit-based with a non-alphabetic frame so
	// translation engines do not touch them.
	_, m := Shield("{a} {b} {c}")
	if len(m) != 3 {
		t.Fatalf("want 3 replacements, got %d", len(m))
	}
	seen := make(map[string]bool)
	for i, r := range m {
		if seen[r.Token] {
			t.Errorf("duplicate token %q", r.Token)
		}
		seen[r.Token] = true
		want := "__PH_" + string(rune('0'+i)) + "__"
		if r.Token != want {
			t.Errorf("token %d = %q, want %q", i, r.Token, want)
		}
	}
}

func TestShieldSkipsMarkersPresentInText(t *testing.T) {
	// Text that already contains a literal marker string must round-trip
	// untouched: token numbering skips past colliding indices.
	tests := []string{
		"__PH_0__ {a}",
		"docs mention __PH_0__ and __PH_1__ next to {x} and {y}",
		"{a} then literal __PH_1__ tail",
	}
	for _, text := range tests {
		masked, m := Shield(text)
		for _, r := range m {
			if strings.Contains(text, r.Token) {
				t.Errorf("Shield(%q) allocated token %q already present in the text", text, r.Token)
			}
		}
		if got := Unshield(masked, m); got != text {
			t.Errorf("round trip failed:\n  text:   %q\n  masked: %q\n  got:    %q", text, masked, got)
		}
	}
}

func TestShieldOverlapEarliestStartLongestMatch(t *testing.T) {
	// The tag pattern starts at '<' and swallows the inner brace; the
	// brace pattern must not fire inside an already masked span.
	text := "<a title={t}>link</a>"
	masked, m := Shield(text)
	if got := Unshield(masked, m); got != text {
		t.Fatalf("round trip = %q, want %q", got, text)
	}
	if len(m) != 2 {
		t.Fatalf("want 2 replacements (open tag, close tag), got %d: %v", len(m), m)
	}
	if m[0].Original != "<a title={t}>" {
		t.Errorf("first masked span = %q, want the full opening tag", m[0].Original)
	}
}

func TestUnshieldOrderIndependentOfMapSize(t *testing.T) {
	// Ten or more placeholders: __PH_1__ must not corrupt __PH_10__ and
	// the other way round.
	var b strings.Builder
	for i := 0; i < 12; i++ {
		b.WriteString("{v")
		b.WriteByte(byte('a' + i))
		b.WriteString("} word ")
	}
	text := b.String()
	masked, m := Shield(text)
	if len(m) != 12 {
		t.Fatalf("want 12 replacements, got %d", len(m))
	}
	if got := Unshield(masked, m); got != text {
		t.Errorf("round trip = %q, want %q", got, text)
	}
}
