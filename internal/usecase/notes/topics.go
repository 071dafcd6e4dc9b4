package notes

import "strings"

// Topics returns the first one or two sentences of the summary as a
// lightweight topic digest. When the summary has no detectable sentence
// boundary the trimmed summary is returned verbatim.
func Topics(summary string) string {
	sentences := SplitSentences(summary)
	if len(sentences) == 0 {
		return strings.TrimSpace(summary)
	}
	if len(sentences) > 2 {
		sentences = sentences[:2]
	}
	return strings.Join(sentences, " ")
}
