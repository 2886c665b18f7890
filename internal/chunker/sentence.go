package chunker

import (
	"strings"
)

// DefaultTerminators are the runes that end a sentence.
const DefaultTerminators = ".!?"

// SentenceSplitter splits text into trimmed, non-empty sentences.
type SentenceSplitter struct {
	terminators string
}

// NewSentenceSplitter returns a splitter for the given terminator runes.
// An empty set falls back to DefaultTerminators.
func NewSentenceSplitter(terminators string) *SentenceSplitter {
	if terminators == "" {
		terminators = DefaultTerminators
	}
	return &SentenceSplitter{terminators: terminators}
}

// Split returns the sentences of text in reading order. Text after the last
// terminator is kept as a final sentence.
func (s *SentenceSplitter) Split(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return strings.ContainsRune(s.terminators, r)
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Split splits text on DefaultTerminators.
func Split(text string) []string {
	return NewSentenceSplitter(DefaultTerminators).Split(text)
}
