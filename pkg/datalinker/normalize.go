package datalinker

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds a name for comparison across catalogues: accents are stripped, case
// is lowered and surrounding whitespace removed.
func Normalize(name string) string {
	// Chains keep state between calls so one is built per use
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	folded, _, err := transform.String(stripMarks, name)
	if err != nil {
		folded = name
	}

	return strings.TrimSpace(strings.ToLower(folded))
}
