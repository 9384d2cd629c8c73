package normalize

import "strings"

// quoteReplacer repairs quote characters mangled by encoding round trips.
// The single bytes 0x91 through 0x94 are Windows-1252 smart quotes read
// as code points, and the "â" family is UTF-8 punctuation
// decoded as Latin-1. The bare two-character prefix must stay last so the
// longer sequences match first.
var quoteReplacer = strings.NewReplacer(
	"", "‘",
	"", "’",
	"", "“",
	"", "”",
	"&apos;", "'",
	"â", "'",
	"â", "—",
	"â", "–",
	"â", "‘",
	"â¦", "…",
	"âœ", "“",
	"â?", "”",
	"âť", "”",
	"âś", "“",
	"â¨", "—",
	"âł", "″",
	"âŽ", "",
	"â‚", "",
	"â‰", "",
	"â‹", "",
	"â", "",
)

// Quotes restores typographic quotes, dashes, and ellipses that survived
// an encoding round trip as mojibake, and rewrites the &apos; entity.
func Quotes(text string) string {
	return quoteReplacer.Replace(text)
}
