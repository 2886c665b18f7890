// Package summarizer builds extractive summaries: it splits a text into
// sentences, weights them with a sentence scorer and keeps the best ones.
package summarizer

import (
	"errors"
	"fmt"
	"sort"

	"textmetrics/internal/chunker"
	"textmetrics/internal/domain"
)

// DefaultTopN is the number of sentences kept when the caller asks for none.
const DefaultTopN = 3

// ErrNothingToSummarize is returned when the text holds no sentence.
var ErrNothingToSummarize = errors.New("nothing to summarize")

// Order selects how the selected sentences are arranged.
type Order string

const (
	// OrderRank puts the highest-scoring sentence first.
	OrderRank Order = "rank"
	// OrderOriginal keeps the reading order of the source text.
	OrderOriginal Order = "original"
)

// ParseOrder maps a config value to an Order; empty means OrderRank.
func ParseOrder(s string) (Order, error) {
	switch Order(s) {
	case "", OrderRank:
		return OrderRank, nil
	case OrderOriginal:
		return OrderOriginal, nil
	}
	return "", fmt.Errorf("unknown summary order: %q", s)
}

// Scorer weights sentences; domain.NLP satisfies it.
type Scorer interface {
	ScoreSentences(sentences []string) ([]float64, error)
}

// Extractive implements domain.Summarizer.
type Extractive struct {
	splitter *chunker.SentenceSplitter
	scorer   Scorer
	topN     int
	order    Order
}

// New creates a summarizer. topN <= 0 falls back to DefaultTopN.
func New(scorer Scorer, topN int, order Order) *Extractive {
	if topN <= 0 {
		topN = DefaultTopN
	}
	if order == "" {
		order = OrderRank
	}
	return &Extractive{
		splitter: chunker.NewSentenceSplitter(chunker.DefaultTerminators),
		scorer:   scorer,
		topN:     topN,
		order:    order,
	}
}

// Summarize returns up to topN sentences of text. A single sentence is
// returned unscored.
func (s *Extractive) Summarize(text string, topN int) ([]domain.RankedSentence, error) {
	if topN <= 0 {
		topN = s.topN
	}
	sentences := s.splitter.Split(text)
	switch len(sentences) {
	case 0:
		return nil, ErrNothingToSummarize
	case 1:
		return []domain.RankedSentence{{Index: 0, Text: sentences[0], Rank: 1}}, nil
	}

	scores, err := s.scorer.ScoreSentences(sentences)
	if err != nil {
		return nil, fmt.Errorf("score sentences: %w", err)
	}
	if len(scores) != len(sentences) {
		return nil, fmt.Errorf("scorer returned %d scores for %d sentences", len(scores), len(sentences))
	}

	idxs := make([]int, len(sentences))
	for i := range idxs {
		idxs[i] = i
	}
	// Stable: equal scores keep the original sentence order.
	sort.SliceStable(idxs, func(i, j int) bool { return scores[idxs[i]] > scores[idxs[j]] })
	if topN > len(idxs) {
		topN = len(idxs)
	}
	out := make([]domain.RankedSentence, 0, topN)
	for rank, idx := range idxs[:topN] {
		out = append(out, domain.RankedSentence{
			Index:  idx,
			Text:   sentences[idx],
			Score:  scores[idx],
			Rank:   rank + 1,
			Scored: true,
		})
	}
	if s.order == OrderOriginal {
		sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	}
	return out, nil
}
