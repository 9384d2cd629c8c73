// Package normalize provides text cleaning functions for preparing
// extracted document text for retrieval pipelines.
//
// Text pulled out of PDFs, word processors, and web pages tends to carry
// artifacts that hurt both embedding quality and readability: runs of
// whitespace, typographic ligatures, list bullets, mojibake from encoding
// round trips, and hard line wraps in the middle of sentences. Each
// function here removes one class of artifact, takes a string, and
// returns the cleaned string. All of them are pure and safe for
// concurrent use.
//
// # Composition
//
// [Text] applies the standard cleaning sequence in a fixed order:
//
//	cleaned := normalize.Text(raw)
//
// The order matters. Whitespace collapsing runs first so later passes see
// tidy lines, character rewrites run before the non-ASCII strip so
// recoverable characters are expanded rather than dropped, and paragraph
// grouping runs last so it sees the final line structure. Each pass is
// idempotent on its own. The composed sequence is stable too, except that
// deleting a bullet can expose a space run the earlier whitespace pass
// has already been applied to.
//
// # Paragraph grouping
//
// Three strategies are provided. [BrokenParagraphs] repairs text whose
// paragraphs were hard-wrapped, [NewLineParagraphs] treats each line as
// its own paragraph, and [AutoParagraphs] samples the text to decide
// between the two.
package normalize
