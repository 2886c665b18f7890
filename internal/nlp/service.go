// Package nlp puts the language detector and the sentence scorer behind the
// two-method domain.NLP port.
package nlp

import (
	"errors"

	"textmetrics/internal/domain"
)

// ErrDetectionDisabled is returned by DetectLanguage when no detector is configured.
var ErrDetectionDisabled = errors.New("language detection disabled")

// Service implements domain.NLP.
type Service struct {
	detector domain.LanguageDetector
	scorer   domain.SentenceScorer
}

// NewService composes a detector and a scorer. detector may be nil.
func NewService(detector domain.LanguageDetector, scorer domain.SentenceScorer) *Service {
	return &Service{detector: detector, scorer: scorer}
}

// DetectLanguage identifies the language of text.
func (s *Service) DetectLanguage(text string) (domain.LanguageResult, error) {
	if s.detector == nil {
		return domain.LanguageResult{}, ErrDetectionDisabled
	}
	return s.detector.Detect(text)
}

// ScoreSentences weights each sentence with the configured scorer.
func (s *Service) ScoreSentences(sentences []string) ([]float64, error) {
	return s.scorer.ScoreSentences(sentences)
}

// ScorerName reports which scorer is in use.
func (s *Service) ScorerName() string { return s.scorer.Name() }
