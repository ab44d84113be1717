package spots

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slug derives the output file stem for a spot name: diacritics
// stripped, lowercased, spaces replaced with underscores.
// Slug("Arguineguín") is "arguineguin". Safe for concurrent use.
func Slug(name string) string {
	// The chain decomposes characters and drops their combining
	// marks, so "í" comes out as "i". It holds per-run buffers, so
	// every call gets a fresh one rather than sharing package state
	// across goroutines.
	deaccent := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(deaccent, name)
	if err != nil {
		stripped = name
	}
	return strings.ReplaceAll(strings.ToLower(stripped), " ", "_")
}
