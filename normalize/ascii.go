package normalize

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

var nonASCIIRemover = runes.Remove(runes.Predicate(func(r rune) bool {
	return r > unicode.MaxASCII
}))

// NonASCII strips every character outside the 7-bit ASCII range. Invalid
// UTF-8 sequences are stripped along with them. Run [Ligatures] and
// [Quotes] first so characters with an ASCII or typographic equivalent
// are rewritten instead of dropped.
func NonASCII(text string) string {
	out, _, _ := transform.String(nonASCIIRemover, text)
	return out
}
