package normalize

import "strings"

// BrokenParagraphs rejoins paragraphs whose lines were hard-wrapped.
// A bare newline between two non-blank lines is treated as a wrap and
// replaced with a single space; blank lines are paragraph boundaries and
// pass through untouched, so the spacing between paragraphs survives.
func BrokenParagraphs(text string) string {
	lines := strings.Split(text, "\n")
	var b strings.Builder
	b.Grow(len(text))
	for i, line := range lines {
		if i > 0 {
			if isBlankLine(line) || isBlankLine(lines[i-1]) {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString(line)
	}
	return b.String()
}

// NewLineParagraphs treats every non-blank line as its own paragraph and
// separates them with blank lines. Use it for text where single newlines
// already mark paragraph boundaries, such as subtitle or transcript dumps.
func NewLineParagraphs(text string) string {
	var paragraphs []string
	for _, line := range strings.Split(text, "\n") {
		if isBlankLine(line) {
			continue
		}
		paragraphs = append(paragraphs, line)
	}
	return strings.Join(paragraphs, "\n\n")
}

const (
	autoGroupMaxLines  = 2000
	autoGroupThreshold = 0.1
)

// AutoParagraphs picks a grouping strategy from the shape of the text.
// It samples up to the first 2000 lines; when fewer than one line in ten
// is blank the text likely separates paragraphs with single newlines and
// goes through [NewLineParagraphs], otherwise blank lines are the
// boundaries and it goes through [BrokenParagraphs].
func AutoParagraphs(text string) string {
	lines := strings.Split(text, "\n")
	sample := lines
	if len(sample) > autoGroupMaxLines {
		sample = sample[:autoGroupMaxLines]
	}

	blank := 0
	for _, line := range sample {
		if isBlankLine(line) {
			blank++
		}
	}

	if float64(blank)/float64(len(sample)) < autoGroupThreshold {
		return NewLineParagraphs(text)
	}
	return BrokenParagraphs(text)
}

func isBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}
