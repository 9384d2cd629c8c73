// Package split partitions text into bounded chunks for retrieval
// pipelines.
//
// Two strategies are provided. Both measure size in characters (Unicode
// code points), never bytes, and both are total over arbitrary Unicode
// input.
//
// # Recursive Splitting
//
// [Recursive] cuts text on the most meaningful boundary available,
// falling back through a fixed separator hierarchy (paragraph break,
// line break, word boundary, single characters), then merges the
// resulting pieces into overlapping chunks near the target size:
//
//	chunks, err := split.Recursive(text, 1000)
//
// Internally the text is split into pieces of at most a third of the
// chunk size and a window of three consecutive pieces slides across
// them, so adjacent chunks share roughly two thirds of their content.
// Concepts that straddle a chunk boundary therefore remain complete in
// at least one chunk.
//
// # Fixed-Width Splitting
//
// [Fixed] slices text into consecutive runs of exactly the given number
// of characters with no overlap and no boundary awareness:
//
//	chunks, err := split.Fixed(text, 512)
//
// The final run may be shorter; concatenating the runs reproduces the
// input exactly.
//
// # Limits
//
// Chunk sizes and widths must be positive; non-positive values are
// rejected rather than clamped. Empty input yields no chunks. A
// whitespace-free run longer than the piece limit is sliced by the
// character fallback, which restores the size bound. Two cases can
// exceed the bound: whitespace-only text longer than the limit comes
// back whole as a single chunk, and chunk sizes below three merge
// single-character pieces in windows of three.
package split
