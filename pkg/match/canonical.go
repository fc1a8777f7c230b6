// Package match resolves free-text product and variation names from order
// exports to canonical inventory catalog entries.
//
// Marketplace names are noisy: SKU digits, parenthetical notes, trailing
// qualifiers and spelling drift. Matching runs a cheap canonicalization
// first, then exact comparison, token-set Jaccard similarity and a
// substring/overlap fallback, in that order.
package match

import (
	"regexp"
	"strings"
)

var (
	trailingDash   = regexp.MustCompile(`\s*-\s*.+$`)
	trailingParen  = regexp.MustCompile(`\s*\(.+\)\s*$`)
	trailingSlash  = regexp.MustCompile(`\s*/\s*.+$`)
	trailingComma  = regexp.MustCompile(`\s*,\s*.+$`)
	multiSpace     = regexp.MustCompile(`\s{2,}`)
	nonAlnumSpace  = regexp.MustCompile(`[^a-z0-9 ]+`)
)

// Token-level synonym table. Covers a recurring misspelling and the
// hyphenated/fused forms of the same color.
var synonyms = map[string][]string{
	"fuschia":   {"fuchsia"},
	"off-white": {"off", "white"},
	"offwhite":  {"off", "white"},
}

// DisplayName strips SKU-style numeric noise from a raw name: "#"
// characters and any standalone digit run not adjacent to a letter or
// hyphen, with whitespace collapsed. "Mug #12" becomes "Mug"; "A4 Frame"
// keeps its embedded digit.
func DisplayName(raw string) string {
	s := strings.ReplaceAll(raw, "#", "")
	s = stripBareDigitRuns(s)
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// stripBareDigitRuns removes digit runs whose neighbors are neither
// letters nor hyphens.
func stripBareDigitRuns(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))

	isDigit := func(r rune) bool { return r >= '0' && r <= '9' }
	sticky := func(r rune) bool {
		return r == '-' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	}

	for i := 0; i < len(runes); {
		if !isDigit(runes[i]) {
			b.WriteRune(runes[i])
			i++
			continue
		}
		j := i
		for j < len(runes) && isDigit(runes[j]) {
			j++
		}
		keep := (i > 0 && sticky(runes[i-1])) || (j < len(runes) && sticky(runes[j]))
		if keep {
			b.WriteString(string(runes[i:j]))
		}
		i = j
	}
	return b.String()
}

// Canonicalize lowercases the display form and reduces it to
// alphanumerics and single spaces, the comparison form used throughout
// matching.
func Canonicalize(raw string) string {
	s := strings.ToLower(DisplayName(raw))
	s = nonAlnumSpace.ReplaceAllString(s, " ")
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// CleanName trims common marketplace variation/annotation suffixes — a
// trailing " - ...", "(...)", "/..." or ", ..." — without full
// canonicalization. Used before catalog lookup so "Red Mug - Large (new)"
// looks up as "Red Mug".
func CleanName(raw string) string {
	s := strings.TrimSpace(raw)
	s = trailingDash.ReplaceAllString(s, "")
	s = trailingParen.ReplaceAllString(s, "")
	s = trailingSlash.ReplaceAllString(s, "")
	s = trailingComma.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// Tokenize splits a canonical string into its token set form, applying
// the synonym table and dropping empties.
func Tokenize(canonical string) []string {
	parts := strings.Split(canonical, " ")
	out := make([]string, 0, len(parts))
	for _, t := range parts {
		if t == "" {
			continue
		}
		if repl, ok := synonyms[t]; ok {
			out = append(out, repl...)
			continue
		}
		out = append(out, t)
	}
	return out
}

// Jaccard computes |intersection| / |union| over two token sets. Two
// empty sets score zero.
func Jaccard(a, b []string) float64 {
	sa := toSet(a)
	sb := toSet(b)

	union := len(sa)
	inter := 0
	for t := range sb {
		if _, ok := sa[t]; ok {
			inter++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func toSet(tokens []string) map[string]struct{} {
	s := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		s[t] = struct{}{}
	}
	return s
}
