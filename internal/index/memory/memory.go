// Package memory is an in-memory sentence index using brute-force cosine similarity.
package memory

import (
	"errors"
	"sort"
	"sync"

	"textmetrics/internal/domain"
)

var (
	ErrInvalidDimension  = errors.New("invalid dimension")
	ErrLengthMismatch    = errors.New("sentences and vectors length mismatch")
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
)

// Entry is an indexed sentence.
type Entry struct {
	Index int
	Text  string
}

// Index holds L2-normalised sentence vectors.
type Index struct {
	mu        sync.RWMutex
	dimension int
	vectors   [][]float64
	entries   []Entry
}

func NewIndex() *Index { return &Index{} }

// Init resets the index for vectors of the given dimension.
func (s *Index) Init(dimension int) error {
	if dimension <= 0 {
		return ErrInvalidDimension
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dimension = dimension
	s.vectors = nil
	s.entries = nil
	return nil
}

func (s *Index) Upsert(entries []Entry, vectors [][]float64) error {
	if len(entries) != len(vectors) {
		return ErrLengthMismatch
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range vectors {
		if len(v) != s.dimension {
			return ErrDimensionMismatch
		}
	}
	s.entries = append(s.entries, entries...)
	s.vectors = append(s.vectors, vectors...)
	return nil
}

// Search returns the topK entries most similar to vector. Equal scores keep
// insertion order.
func (s *Index) Search(vector []float64, topK int) []domain.RankedSentence {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if topK <= 0 {
		topK = 5
	}
	// vectors are assumed L2-normalized, so the dot product is the cosine
	scores := make([]float64, len(s.vectors))
	for i := range s.vectors {
		scores[i] = dot(s.vectors[i], vector)
	}
	idxs := argsortDesc(scores)
	if topK > len(idxs) {
		topK = len(idxs)
	}
	results := make([]domain.RankedSentence, 0, topK)
	for i := 0; i < topK; i++ {
		j := idxs[i]
		results = append(results, domain.RankedSentence{
			Index:  s.entries[j].Index,
			Text:   s.entries[j].Text,
			Score:  scores[j],
			Rank:   i + 1,
			Scored: true,
		})
	}
	return results
}

func (s *Index) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

func argsortDesc(vals []float64) []int {
	idxs := make([]int, len(vals))
	for i := range vals {
		idxs[i] = i
	}
	sort.SliceStable(idxs, func(i, j int) bool { return vals[idxs[i]] > vals[idxs[j]] })
	return idxs
}
