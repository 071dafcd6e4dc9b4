package notes

import "strings"

// DefaultChunkSize bounds the text passed to the summarization model per
// call. Dialogue summarization models degrade badly on long inputs, so
// longer transcripts are sliced into segments of at most this many
// characters.
const DefaultChunkSize = 2000

// SplitText slices text into contiguous segments of at most maxSize runes.
// Segments concatenated in order reproduce text exactly: no overlap, no
// trimming. Splitting on rune boundaries keeps multi-byte characters
// (accented French text) intact. Empty or whitespace-only input yields no
// segments.
func SplitText(text string, maxSize int) []string {
	if maxSize <= 0 || strings.TrimSpace(text) == "" {
		return nil
	}

	runes := []rune(text)
	segments := make([]string, 0, (len(runes)+maxSize-1)/maxSize)
	for i := 0; i < len(runes); i += maxSize {
		end := i + maxSize
		if end > len(runes) {
			end = len(runes)
		}
		segments = append(segments, string(runes[i:end]))
	}
	return segments
}
