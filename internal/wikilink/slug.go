package wikilink

import (
	"regexp"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// isCombiningDiacritic matches the Combining Diacritical Marks block (U+0300..U+036F).
func isCombiningDiacritic(r rune) bool {
	return r >= 0x0300 && r <= 0x036F
}

// Slugify derives a URL-safe slug from a human-readable title: lowercase,
// diacritics stripped, every run of characters outside [a-z0-9] collapsed into
// a single hyphen, no leading or trailing hyphen.
//
// Different titles may produce the same slug ("Père" and "Pere" both give "pere").
// Callers that need uniqueness must check it themselves.
func Slugify(title string) string {
	lower := strings.ToLower(title)

	stripper := transform.Chain(norm.NFD, runes.Remove(runes.Predicate(isCombiningDiacritic)))
	stripped, _, err := transform.String(stripper, lower)
	if err != nil {
		stripped = lower
	}

	return strings.Trim(nonAlphanumeric.ReplaceAllString(stripped, "-"), "-")
}
