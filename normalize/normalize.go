package normalize

// Text runs the standard cleaning sequence: whitespace collapsing,
// ligature expansion, bullet removal, the non-ASCII strip, and finally
// paragraph regrouping. Each pass is idempotent on its own; see the
// package documentation for the ordering rationale and the one case
// where the composed sequence is not.
func Text(text string) string {
	text = Whitespace(text)
	text = Ligatures(text)
	text = Bullets(text)
	text = NonASCII(text)
	return BrokenParagraphs(text)
}
