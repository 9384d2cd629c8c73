package textprep

import "fmt"

// Metadata holds descriptive key/value pairs carried by a Document, such
// as source filename, page range, or section title.
type Metadata map[string]string

// Clone returns an independent copy of the metadata. Cloning nil
// metadata yields nil.
func (m Metadata) Clone() Metadata {
	if m == nil {
		return nil
	}
	clone := make(Metadata, len(m))
	for k, v := range m {
		clone[k] = v
	}
	return clone
}

// Document is one unit of text moving through the preparation pipeline.
// Cleaner methods rewrite Content in place; splitter methods leave the
// receiver intact and return new Documents.
type Document struct {
	// Content is the document text.
	Content string

	// Metadata describes where the content came from. Every Document
	// produced from this one carries its own copy, so chunks never share
	// a metadata map with their source or with each other.
	Metadata Metadata
}

// NewDocument creates a Document carrying its own copy of metadata, so
// later changes to the caller's map cannot leak in.
func NewDocument(content string, metadata Metadata) *Document {
	return &Document{
		Content:  content,
		Metadata: metadata.Clone(),
	}
}

// MetadataFromAny converts a loosely typed map, such as one produced by
// JSON decoding, into Metadata. Every value must be a string; anything
// else is rejected so typing mistakes surface before processing starts.
func MetadataFromAny(values map[string]any) (Metadata, error) {
	if values == nil {
		return nil, nil
	}
	metadata := make(Metadata, len(values))
	for key, value := range values {
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("metadata key %q: value must be a string, got %T", key, value)
		}
		metadata[key] = s
	}
	return metadata, nil
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	return &Document{
		Content:  d.Content,
		Metadata: d.Metadata.Clone(),
	}
}
