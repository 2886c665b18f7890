// Package scoring holds what the sentence scorers share: the term pattern and
// the English stopword list.
package scoring

import (
	"regexp"
	"strings"
)

// TermPattern matches terms of two or more word characters.
var TermPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Terms returns the lowercased terms of text, dropping stopwords when stop is non-nil.
func Terms(text string, stop map[string]struct{}) []string {
	raw := TermPattern.FindAllString(strings.ToLower(text), -1)
	if len(raw) == 0 || stop == nil {
		return raw
	}
	out := raw[:0]
	for _, t := range raw {
		if _, isStop := stop[t]; isStop {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Stopwords returns the English stopword set, or nil when enabled is false.
func Stopwords(enabled bool) map[string]struct{} {
	if !enabled {
		return nil
	}
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "to", "of", "in", "on", "at", "by", "with", "as", "is", "are", "was", "were", "be", "been", "being", "it", "this", "that", "these", "those", "from", "up", "down", "over", "under", "again", "further", "than", "so", "such", "into", "about", "between", "through", "during", "before", "after", "above", "below", "out", "off", "own", "same", "too", "very", "can", "will", "just", "don", "should", "now",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
