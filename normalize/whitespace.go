package normalize

import (
	"strings"
	"unicode"
)

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Whitespace collapses every run of horizontal whitespace into a single
// space and trims each line. Carriage returns are rewritten to bare
// newlines first, and newlines themselves are kept, so line structure
// survives for later paragraph grouping. Non-breaking spaces, tabs, and
// the rest of the Unicode space class all count as whitespace.
func Whitespace(text string) string {
	lines := strings.Split(lineEndings.Replace(text), "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.FieldsFunc(line, isHorizontalSpace), " ")
	}
	return strings.Join(lines, "\n")
}

func isHorizontalSpace(r rune) bool {
	return unicode.IsSpace(r) && r != '\n'
}
