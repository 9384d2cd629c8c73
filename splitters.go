package textprep

import "github.com/tsawler/textprep/split"

// RecursiveCharacterSplitter splits the document into chunks of at most
// chunkSize characters, cutting on paragraph, line, and word boundaries
// where possible and falling back to character slicing for unsplittable
// runs. Neighbouring chunks overlap by roughly a third so ideas spanning
// a boundary stay complete in at least one chunk. The receiver is not
// modified; every chunk carries its own copy of the document's metadata.
// Empty content yields no chunks. chunkSize must be positive.
func (d *Document) RecursiveCharacterSplitter(chunkSize int) ([]*Document, error) {
	chunks, err := split.Recursive(d.Content, chunkSize)
	if err != nil {
		return nil, err
	}
	return d.wrap(chunks), nil
}

// SplitOnNumCharacters slices the document into consecutive chunks of
// exactly width characters with no overlap and no boundary awareness;
// the final chunk may be shorter. The receiver is not modified; every
// chunk carries its own copy of the document's metadata. Empty content
// yields no chunks. width must be positive.
func (d *Document) SplitOnNumCharacters(width int) ([]*Document, error) {
	chunks, err := split.Fixed(d.Content, width)
	if err != nil {
		return nil, err
	}
	return d.wrap(chunks), nil
}

// wrap turns chunk strings into Documents, one metadata copy each.
func (d *Document) wrap(chunks []string) []*Document {
	if len(chunks) == 0 {
		return nil
	}
	docs := make([]*Document, 0, len(chunks))
	for _, chunk := range chunks {
		docs = append(docs, &Document{
			Content:  chunk,
			Metadata: d.Metadata.Clone(),
		})
	}
	return docs
}
