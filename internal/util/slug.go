package util

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe identifier from s: accents are folded, letters
// lowercased and every run of other characters becomes one hyphen.
// The same input always yields the same slug.
func Slugify(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		folded = s
	}
	slug := nonAlphanumeric.ReplaceAllString(strings.ToLower(folded), "-")
	return strings.Trim(slug, "-")
}
