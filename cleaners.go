package textprep

import "github.com/tsawler/textprep/normalize"

// CleanExtraWhitespace collapses runs of horizontal whitespace into
// single spaces, trims each line, and rewrites CRLF and CR line endings
// to LF. Newlines are preserved; they carry the paragraph structure the
// recursive splitter cuts on.
func (d *Document) CleanExtraWhitespace() {
	d.Content = normalize.Whitespace(d.Content)
}

// CleanLigatures expands typographic ligature characters into their
// constituent letters, so "ﬁnancial" becomes "financial".
func (d *Document) CleanLigatures() {
	d.Content = normalize.Ligatures(d.Content)
}

// CleanBullets deletes bullet and list-marker characters wherever they
// occur, leaving the surrounding whitespace as it was.
func (d *Document) CleanBullets() {
	d.Content = normalize.Bullets(d.Content)
}

// CleanNonASCIIChars deletes every character above the 7-bit ASCII
// range. This is lossy: accented letters, symbols, and emoji are
// removed, not transliterated. Run CleanLigatures and
// ReplaceUnicodeQuotes first to rescue what can be rewritten.
func (d *Document) CleanNonASCIIChars() {
	d.Content = normalize.NonASCII(d.Content)
}

// GroupBrokenParagraphs rejoins paragraphs that were hard-wrapped with
// single newlines, keeping blank-line paragraph boundaries intact.
func (d *Document) GroupBrokenParagraphs() {
	d.Content = normalize.BrokenParagraphs(d.Content)
}

// ReplaceUnicodeQuotes repairs quote, dash, and ellipsis characters
// mangled by encoding round trips, and rewrites the &apos; entity.
func (d *Document) ReplaceUnicodeQuotes() {
	d.Content = normalize.Quotes(d.Content)
}

// GroupNewLineParagraphs treats every non-blank line as its own
// paragraph and separates them with blank lines.
func (d *Document) GroupNewLineParagraphs() {
	d.Content = normalize.NewLineParagraphs(d.Content)
}

// AutoGroupParagraphs samples the content to pick a paragraph grouping
// strategy: newline-delimited text goes through GroupNewLineParagraphs,
// blank-line-delimited text through GroupBrokenParagraphs.
func (d *Document) AutoGroupParagraphs() {
	d.Content = normalize.AutoParagraphs(d.Content)
}

// Clean runs the standard cleaning sequence in a fixed order: extra
// whitespace, ligatures, bullets, non-ASCII characters, then paragraph
// grouping. The order matters; see [normalize.Text]. Metadata is never
// read or written by any cleaner.
func (d *Document) Clean() {
	d.Content = normalize.Text(d.Content)
}
