package frequency

import (
	"math"

	"textmetrics/internal/scoring"
)

// Scorer ranks sentences by word frequency (stopwords filtered).
type Scorer struct {
	stopwords map[string]struct{}
}

// NewScorer creates a frequency-based sentence scorer.
func NewScorer(stopwords bool) *Scorer {
	return &Scorer{stopwords: scoring.Stopwords(stopwords)}
}

// Name returns the identifier of this scorer.
func (s *Scorer) Name() string { return "frequency" }

// ScoreSentences sums the max-normalised frequency of every term in a
// sentence and divides by the square root of the sentence length.
func (s *Scorer) ScoreSentences(sentences []string) ([]float64, error) {
	tokens := make([][]string, len(sentences))
	freq := map[string]float64{}
	for i, sent := range sentences {
		tokens[i] = scoring.Terms(sent, s.stopwords)
		for _, tok := range tokens[i] {
			freq[tok]++
		}
	}
	maxF := 0.0
	for _, v := range freq {
		if v > maxF {
			maxF = v
		}
	}
	if maxF > 0 {
		for k, v := range freq {
			freq[k] = v / maxF
		}
	}
	scores := make([]float64, len(sentences))
	for i, toks := range tokens {
		sscore := 0.0
		for _, tok := range toks {
			sscore += freq[tok]
		}
		// Normalize by sentence length to avoid bias
		if l := float64(len(toks)); l > 0 {
			sscore /= math.Sqrt(l)
		}
		scores[i] = sscore
	}
	return scores, nil
}
