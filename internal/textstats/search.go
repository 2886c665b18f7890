package textstats

import (
	"strings"
	"unicode"

	"textmetrics/internal/domain"
)

// Search counts whole-word occurrences of term in text and locates every
// case-insensitive substring occurrence for highlighting.
func Search(text, term string) (*domain.SearchResult, error) {
	term = strings.ToLower(strings.TrimSpace(term))
	if strings.TrimSpace(text) == "" || term == "" {
		return nil, ErrInvalidInput
	}
	count := 0
	for _, w := range LowerWords(text) {
		if w == term {
			count++
		}
	}
	return &domain.SearchResult{
		Term:  term,
		Count: count,
		Spans: FindSpans(text, term),
	}, nil
}

// FindSpans returns the rune spans of the case-insensitive occurrences of
// term in text. The scan resumes after each match, so spans never overlap.
func FindSpans(text, term string) []domain.Span {
	hay := foldRunes(text)
	needle := foldRunes(term)
	if len(needle) == 0 || len(needle) > len(hay) {
		return nil
	}
	var spans []domain.Span
	for i := 0; i+len(needle) <= len(hay); {
		if runesEqual(hay[i:i+len(needle)], needle) {
			spans = append(spans, domain.Span{Start: i, End: i + len(needle)})
			i += len(needle)
			continue
		}
		i++
	}
	return spans
}

func foldRunes(s string) []rune {
	rs := []rune(s)
	for i, r := range rs {
		rs[i] = unicode.ToLower(r)
	}
	return rs
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
