// Package placeholder masks format-sensitive substrings (interpolation
// placeholders and markup tags) before text is handed to a lossy external
// translation engine, and restores them afterwards.
//
// Masking replaces each recognized substring with a synthetic marker token
// that translation engines pass through unmodified. The mask/restore pair
// is lossless: Unshield(Shield(text)) == text for any input.
package placeholder

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Replacement records a single masked substring.
type Replacement struct {
	// Token is the synthetic marker inserted into the masked text.
	Token string
	// Original is the substring the token stands for.
	Original string
}

// Map records the placeholders masked out of one text, in masking order.
// It is produced by Shield and consumed by Unshield within a single
// unit-translation call; it is never persisted.
type Map []Replacement

// Grammar is one placeholder syntax the shield recognizes.
type Grammar struct {
	// Name identifies the grammar in logs and tests.
	Name string
	// Pattern matches one complete placeholder of this grammar.
	Pattern *regexp.Regexp
}

// Grammars is the ordered list of recognized placeholder syntaxes.
// Order is the tie-break priority when two grammars match at the same
// position with the same length; across positions the rule is
// earliest-start, then longest-match.
var Grammars = []Grammar{
	// HTML/XML-style tags: <b>, </b>, <br/>, <a href="x">.
	// The tag name must start with a letter, so stray "<" or "< 3" is
	// left untouched rather than shielded.
	{Name: "tag", Pattern: regexp.MustCompile(`</?[A-Za-z][^<>]*>`)},
	// printf-style named directives: %(name)s, %(count)03d.
	{Name: "printf-named", Pattern: regexp.MustCompile(`%\([^)]+\)[#0\- +]?[\d.]*[sdif]`)},
	// printf-style positional directives: %s, %d, %.2f, %05d.
	{Name: "printf", Pattern: regexp.MustCompile(`%[#0\- +]?\d*(?:\.\d+)?[sdif]`)},
	// Brace interpolation: {name}, {0}, {percent:.2%}.
	{Name: "brace", Pattern: regexp.MustCompile(`\{[^{}]+\}`)},
}

// token builds the marker for the n-th masked placeholder. Digits framed
// by a fixed non-alphabetic sentinel survive machine translation intact.
func token(n int) string {
	return fmt.Sprintf("__PH_%d__", n)
}

// tokenFor returns the next marker whose text does not already occur
// literally in text, so restoring markers never rewrites source content
// that happens to look like one. next is advanced past the chosen index.
func tokenFor(text string, next *int) string {
	for {
		t := token(*next)
		*next++
		if !strings.Contains(text, t) {
			return t
		}
	}
}

type span struct {
	start, end int
	grammar    int // index into Grammars, lower wins ties
}

// Shield replaces every recognized placeholder in text with a unique
// marker token and returns the masked text together with the Map needed
// to restore it. Text without placeholders is returned unchanged with an
// empty Map. Shield never fails: malformed or unbalanced constructs that
// no grammar matches are simply left as-is.
func Shield(text string) (string, Map) {
	var spans []span
	for gi, g := range Grammars {
		for _, loc := range g.Pattern.FindAllStringIndex(text, -1) {
			spans = append(spans, span{start: loc[0], end: loc[1], grammar: gi})
		}
	}
	if len(spans) == 0 {
		return text, nil
	}

	// Earliest start first; at the same start the longest match wins;
	// at the same start and length the grammar order decides.
	sort.Slice(spans, func(i, j int) bool {
		a, b := spans[i], spans[j]
		if a.start != b.start {
			return a.start < b.start
		}
		if a.end != b.end {
			return a.end > b.end
		}
		return a.grammar < b.grammar
	})

	var (
		masked  []byte
		mapping Map
		pos     int
		next    int
	)
	for _, s := range spans {
		if s.start < pos {
			continue // overlaps an already masked span
		}
		tok := tokenFor(text, &next)
		masked = append(masked, text[pos:s.start]...)
		masked = append(masked, tok...)
		mapping = append(mapping, Replacement{Token: tok, Original: text[s.start:s.end]})
		pos = s.end
	}
	masked = append(masked, text[pos:]...)

	return string(masked), mapping
}

// Unshield substitutes the marker tokens in masked back with their
// original substrings, in masking order.
func Unshield(masked string, mapping Map) string {
	if len(mapping) == 0 {
		return masked
	}
	// Tokens are unique within one Map and never collide with the
	// original text, so plain replacement is safe.
	out := masked
	for _, r := range mapping {
		out = strings.ReplaceAll(out, r.Token, r.Original)
	}
	return out
}
