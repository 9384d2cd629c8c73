// Package textprep prepares extracted document text for retrieval
// pipelines. It cleans the artifacts that PDF and office-format
// extraction leave behind, then splits documents into bounded,
// overlapping chunks ready for embedding.
//
// Basic usage:
//
//	doc := textprep.NewDocument(raw, textprep.Metadata{"source": "report.pdf"})
//	doc.Clean()
//	chunks, err := doc.RecursiveCharacterSplitter(1000)
//	if err != nil {
//	    // handle error
//	}
//
// Whole collections are cleaned and split in parallel, preserving input
// order in the flattened result:
//
//	chunks, err := textprep.CleanAndSplitDocs(docs, 1000)
//
// For callers working with plain strings, the lower-level normalize and
// split packages expose the same transforms without the Document wrapper.
package textprep

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	chunks := textprep.Must(doc.RecursiveCharacterSplitter(1000))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
