package tfidf

import (
	"errors"
	"math"
	"sort"

	"textmetrics/internal/scoring"
)

var (
	// ErrEmptyCorpus is returned when Prepare is given no documents.
	ErrEmptyCorpus = errors.New("empty corpus for TF-IDF prepare")
	// ErrEmptyVocabulary is returned when no document contains a usable term.
	ErrEmptyVocabulary = errors.New("no terms found in corpus")
	// ErrNotPrepared is returned by Embed before a successful Prepare.
	ErrNotPrepared = errors.New("tfidf embedder not prepared")
)

// Embedder is a TF-IDF vectorizer over a small corpus, here the sentences of
// one document. It builds a vocabulary from the corpus and computes smoothed
// IDF values.
type Embedder struct {
	vocabulary map[string]int
	idf        []float64
	dimension  int
	prepared   bool
	stopwords  map[string]struct{}
}

// NewEmbedder creates an unprepared embedder. With stopwords set, English
// stopwords are ignored.
func NewEmbedder(stopwords bool) *Embedder {
	return &Embedder{
		vocabulary: make(map[string]int),
		stopwords:  scoring.Stopwords(stopwords),
	}
}

// Prepare builds the vocabulary and IDF values from the provided corpus.
func (e *Embedder) Prepare(corpus []string) error {
	if len(corpus) == 0 {
		return ErrEmptyCorpus
	}
	df := make(map[string]int)
	for _, text := range corpus {
		seen := make(map[string]struct{})
		for _, tok := range scoring.Terms(text, e.stopwords) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}
	// Stable ordering for the vocabulary
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	if len(terms) == 0 {
		e.prepared = false
		return ErrEmptyVocabulary
	}
	e.vocabulary = make(map[string]int, len(terms))
	e.idf = make([]float64, len(terms))
	n := float64(len(corpus))
	for i, term := range terms {
		e.vocabulary[term] = i
		e.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}
	e.dimension = len(terms)
	e.prepared = true
	return nil
}

// Dimension returns the dimensionality of the produced vectors.
func (e *Embedder) Dimension() int { return e.dimension }

// Embed computes the L2-normalised TF-IDF vector of text. Terms outside the
// vocabulary are ignored; a text without known terms yields the zero vector.
func (e *Embedder) Embed(text string) ([]float64, error) {
	if !e.prepared {
		return nil, ErrNotPrepared
	}
	vec := make([]float64, e.dimension)
	tf := make(map[int]int)
	total := 0
	for _, tok := range scoring.Terms(text, e.stopwords) {
		if idx, ok := e.vocabulary[tok]; ok {
			tf[idx]++
			total++
		}
	}
	if total == 0 {
		return vec, nil
	}
	for idx, count := range tf {
		tfv := float64(count) / float64(total)
		vec[idx] = tfv * e.idf[idx]
	}
	// L2 normalize
	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec, nil
}

// Scorer weights each sentence by the sum of its TF-IDF vector, with the
// sentences themselves as the document set.
type Scorer struct {
	stopwords bool
}

// NewScorer creates a TF-IDF sentence scorer.
func NewScorer(stopwords bool) *Scorer {
	return &Scorer{stopwords: stopwords}
}

// Name returns the identifier of this scorer.
func (s *Scorer) Name() string { return "tfidf" }

// ScoreSentences returns one score per sentence. When no sentence holds a
// usable term every score is zero.
func (s *Scorer) ScoreSentences(sentences []string) ([]float64, error) {
	scores := make([]float64, len(sentences))
	if len(sentences) == 0 {
		return scores, nil
	}
	e := NewEmbedder(s.stopwords)
	if err := e.Prepare(sentences); err != nil {
		if errors.Is(err, ErrEmptyVocabulary) {
			return scores, nil
		}
		return nil, err
	}
	for i, sent := range sentences {
		vec, err := e.Embed(sent)
		if err != nil {
			return nil, err
		}
		for _, v := range vec {
			scores[i] += v
		}
	}
	return scores, nil
}
