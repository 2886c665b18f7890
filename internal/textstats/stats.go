// Package textstats computes character, letter and word statistics of a text
// and searches it for terms.
//
// All functions are pure: the result depends only on the arguments.
package textstats

import (
	"errors"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"textmetrics/internal/domain"
)

// DefaultTopN is the length of the top letters and top words tables.
const DefaultTopN = 5

var (
	// ErrEmptyText is returned for empty or whitespace-only text.
	ErrEmptyText = errors.New("no text to analyze")
	// ErrInvalidInput is returned when a search is missing its text or term.
	ErrInvalidInput = errors.New("text and search term are required")
)

// counter is a frequency table that remembers the order in which keys were first seen.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *counter) sorted() []domain.FrequencyEntry {
	out := make([]domain.FrequencyEntry, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, domain.FrequencyEntry{Key: k, Count: c.counts[k]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// mostCommon returns the n most frequent keys; equal counts keep first-seen order.
func (c *counter) mostCommon(n int) []domain.FrequencyEntry {
	out := make([]domain.FrequencyEntry, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, domain.FrequencyEntry{Key: k, Count: c.counts[k]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// ComputeStatistics returns the statistics of text with top tables of DefaultTopN entries.
func ComputeStatistics(text string) (*domain.Stats, error) {
	return ComputeStatisticsN(text, DefaultTopN)
}

// ComputeStatisticsN is ComputeStatistics with a custom top table length.
func ComputeStatisticsN(text string, topN int) (*domain.Stats, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	if topN <= 0 {
		topN = DefaultTopN
	}

	letters := newCounter()
	st := &domain.Stats{}
	for _, r := range text {
		st.TotalChars++
		switch {
		case unicode.IsLetter(r):
			letters.add(strings.ToLower(string(r)))
			st.TotalLetters++
		case isDigit(r):
			st.TotalDigits++
		case r == ' ':
			st.TotalSpaces++
		}
	}
	// Tabs, newlines and other whitespace fall into the special bucket.
	st.TotalSpecial = st.TotalChars - st.TotalLetters - st.TotalDigits - st.TotalSpaces

	original := Words(text)
	words := newCounter()
	for _, w := range original {
		words.add(strings.ToLower(w))
	}

	st.TotalWords = len(original)
	if st.TotalWords > 0 {
		st.HasWords = true
		sum := 0
		longest, shortest := -1, -1
		for _, w := range original {
			n := utf8.RuneCountInString(w)
			sum += n
			if n > longest {
				longest = n
				st.LongestWord = w
			}
			if shortest < 0 || n < shortest {
				shortest = n
				st.ShortestWord = w
			}
		}
		st.AverageWordLength = float64(sum) / float64(st.TotalWords)
	}

	st.LetterCounts = letters.counts
	st.WordCounts = words.counts
	st.Letters = letters.sorted()
	st.Words = words.sorted()
	st.TopLetters = letters.mostCommon(topN)
	st.TopWords = words.mostCommon(topN)
	return st, nil
}

// digitTyped holds the non-decimal runes with a digit value: superscripts,
// subscripts and circled or parenthesized digits.
var digitTyped = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00b2, Hi: 0x00b3, Stride: 1},
		{Lo: 0x00b9, Hi: 0x00b9, Stride: 1},
		{Lo: 0x2070, Hi: 0x2070, Stride: 1},
		{Lo: 0x2074, Hi: 0x2079, Stride: 1},
		{Lo: 0x2080, Hi: 0x2089, Stride: 1},
		{Lo: 0x2460, Hi: 0x2468, Stride: 1},
		{Lo: 0x2474, Hi: 0x247c, Stride: 1},
		{Lo: 0x2488, Hi: 0x2490, Stride: 1},
		{Lo: 0x24ea, Hi: 0x24ea, Stride: 1},
		{Lo: 0x24f5, Hi: 0x24fd, Stride: 1},
		{Lo: 0x24ff, Hi: 0x24ff, Stride: 1},
		{Lo: 0x2776, Hi: 0x277e, Stride: 1},
		{Lo: 0x2780, Hi: 0x2788, Stride: 1},
		{Lo: 0x278a, Hi: 0x2792, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1f100, Hi: 0x1f10a, Stride: 1},
	},
	LatinOffset: 2,
}

func isDigit(r rune) bool {
	return unicode.IsDigit(r) || unicode.Is(digitTyped, r)
}
