// Package language identifies the natural language of a text.
package language

import (
	"errors"
	"strings"

	"github.com/abadojack/whatlanggo"

	"textmetrics/internal/domain"
)

// ErrUndetectable is returned when no language can be identified.
var ErrUndetectable = errors.New("language could not be detected")

// Detector wraps whatlanggo behind domain.LanguageDetector.
type Detector struct {
	minConfidence float64
}

// NewDetector creates a detector. A result whose confidence is below
// minConfidence is reported as unreliable; zero keeps whatlanggo's own
// reliability threshold.
func NewDetector(minConfidence float64) *Detector {
	return &Detector{minConfidence: minConfidence}
}

// Detect returns the ISO 639-1 code (639-3 when the language has none), English name and confidence of the text's language.
func (d *Detector) Detect(text string) (domain.LanguageResult, error) {
	if strings.TrimSpace(text) == "" {
		return domain.LanguageResult{}, ErrUndetectable
	}
	info := whatlanggo.Detect(text)
	name := info.Lang.String()
	if name == "" {
		return domain.LanguageResult{}, ErrUndetectable
	}
	// Some languages (Persian, Yiddish, Cebuano...) only have a 639-3 code.
	code := info.Lang.Iso6391()
	if code == "" {
		code = info.Lang.Iso6393()
	}
	reliable := info.IsReliable()
	if d.minConfidence > 0 {
		reliable = info.Confidence >= d.minConfidence
	}
	return domain.LanguageResult{
		Code:       code,
		Name:       name,
		Confidence: info.Confidence,
		Reliable:   reliable,
	}, nil
}
