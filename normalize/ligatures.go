package normalize

import "strings"

// ligatureReplacer expands typographic ligatures into their constituent
// letters. PDF extractors emit these routinely because fonts encode them
// as single glyphs.
var ligatureReplacer = strings.NewReplacer(
	"æ", "ae",
	"Æ", "AE",
	"ﬀ", "ff",
	"ﬁ", "fi",
	"ﬂ", "fl",
	"ﬃ", "ffi",
	"ﬄ", "ffl",
	"ﬅ", "ft",
	"ʪ", "ls",
	"œ", "oe",
	"Œ", "OE",
	"ȹ", "qp",
	"ﬆ", "st",
	"ʦ", "ts",
)

// Ligatures replaces each ligature character with its expanded letters,
// so "ﬁnancial" becomes "financial".
func Ligatures(text string) string {
	return ligatureReplacer.Replace(text)
}
