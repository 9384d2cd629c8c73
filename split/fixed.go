package split

import "fmt"

// Fixed slices text into consecutive chunks of exactly width characters
// with no overlap and no boundary awareness; the final chunk may be
// shorter. Concatenating the chunks reproduces the input exactly. Empty
// text yields no chunks. A non-positive width is an error.
func Fixed(text string, width int) ([]string, error) {
	if width <= 0 {
		return nil, fmt.Errorf("width must be positive, got %d", width)
	}
	if text == "" {
		return nil, nil
	}
	return sliceRunes(text, width), nil
}
