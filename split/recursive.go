package split

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// separators is the boundary hierarchy tried from strongest to weakest
// semantic significance. The empty separator is the terminal fallback:
// it slices character by character, so splitting always terminates with
// pieces inside the limit.
var separators = []string{"\n\n", "\n", " ", ""}

// windowSize is the number of small pieces merged into one chunk. With
// pieces capped at a third of the chunk size, neighboring chunks share
// two pieces of content.
const windowSize = 3

// Recursive splits text into an ordered sequence of overlapping chunks
// of at most chunkSize characters. Cuts land on paragraph breaks, line
// breaks, or word boundaries where possible, and adjacent chunks overlap
// by roughly a third of the chunk size. Empty text yields no chunks.
// A non-positive chunkSize is an error.
func Recursive(text string, chunkSize int) ([]string, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", chunkSize)
	}
	if text == "" {
		return nil, nil
	}
	pieces := splitBySeparators(text, chunkSize/windowSize, separators)
	return mergeWindows(text, pieces), nil
}

// splitBySeparators recursively breaks text into pieces of at most limit
// characters. The text is split on the strongest separator; pieces that
// still exceed the limit are split again with the remaining weaker
// separators, and the results are spliced in place. Adjacent pieces are
// then packed back together, re-inserting the separator, while they fit
// within the limit, so pieces come out near the limit instead of as
// isolated words.
func splitBySeparators(text string, limit int, seps []string) []string {
	if len(seps) == 0 || seps[0] == "" {
		return sliceRunes(text, limit)
	}

	sep := seps[0]
	var pieces []string
	for _, part := range strings.Split(text, sep) {
		if part == "" {
			continue
		}
		if utf8.RuneCountInString(part) <= limit {
			pieces = append(pieces, part)
			continue
		}
		pieces = append(pieces, splitBySeparators(part, limit, seps[1:])...)
	}
	if len(pieces) == 0 {
		return nil
	}
	return packPieces(pieces, sep, limit)
}

// packPieces greedily merges neighboring pieces, re-inserting sep
// between them, while the combined character count stays within limit.
// The final piece is always emitted.
func packPieces(pieces []string, sep string, limit int) []string {
	sepLen := utf8.RuneCountInString(sep)
	packed := make([]string, 0, len(pieces))

	current := pieces[0]
	currentLen := utf8.RuneCountInString(current)
	for _, piece := range pieces[1:] {
		pieceLen := utf8.RuneCountInString(piece)
		if currentLen+sepLen+pieceLen > limit {
			packed = append(packed, current)
			current = piece
			currentLen = pieceLen
			continue
		}
		current += sep + piece
		currentLen += sepLen + pieceLen
	}
	return append(packed, current)
}

// sliceRunes cuts text into consecutive runs of exactly limit
// characters, the final run shorter. A run always holds at least one
// character, so a non-positive limit degrades to single-character runs
// rather than looping.
func sliceRunes(text string, limit int) []string {
	if utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var runs []string
	var b strings.Builder
	count := 0
	for _, r := range text {
		if count >= limit && count > 0 {
			runs = append(runs, b.String())
			b.Reset()
			count = 0
		}
		b.WriteRune(r)
		count++
	}
	if b.Len() > 0 {
		runs = append(runs, b.String())
	}
	return runs
}

// mergeWindows slides a window of up to windowSize consecutive pieces
// across the splits with stride one, concatenating each window into a
// chunk. Windows shrink at the tail rather than wrapping, so every
// starting offset produces exactly one chunk and neighboring chunks
// share all but one of their pieces.
func mergeWindows(text string, pieces []string) []string {
	if len(pieces) == 0 {
		// Whitespace-only text shreds to nothing; keep it whole.
		if text != "" {
			return []string{text}
		}
		return nil
	}

	chunks := make([]string, 0, len(pieces))
	for i := range pieces {
		end := i + windowSize
		if end > len(pieces) {
			end = len(pieces)
		}
		chunks = append(chunks, strings.Join(pieces[i:end], ""))
	}
	return chunks
}
