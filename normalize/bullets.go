package normalize

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/rangetable"
)

// bulletRunes lists the characters treated as list bullets. The ASCII
// hyphen and asterisk are included, so Markdown list markers and emphasis
// characters are removed along with the typographic bullets.
var bulletRunes = []rune{
	'', '•', '‣', '⁃', 'ㅤ',
	'⁌', '⁍', '∙', '○', '●',
	'◘', '◦', '☙', '❥', '❧',
	'⦾', '⦿', '-', '–', '▪', '▫',
	'*', '·',
}

var bulletRemover = runes.Remove(runes.In(rangetable.New(bulletRunes...)))

// Bullets deletes every bullet character wherever it appears, not just at
// line starts. Whitespace around a removed bullet is left alone; run
// [Whitespace] afterwards to tidy the gaps.
func Bullets(text string) string {
	out, _, _ := transform.String(bulletRemover, text)
	return out
}
