// Package sentiment interprets free-text yes/no answers by polarity.
package sentiment

import (
	"github.com/jonreiter/govader"
)

// Scorer produces a compound polarity score in [-1, 1]; positive means
// affirmative.
type Scorer interface {
	Score(text string) float64
}

// VaderScorer scores text with the VADER sentiment model.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderScorer creates a VADER-backed scorer.
func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns the compound polarity of the text.
func (s *VaderScorer) Score(text string) float64 {
	return s.analyzer.PolarityScores(text).Compound
}

// Affirmative reports whether a score reads as a yes.
func Affirmative(score float64) bool {
	return score > 0
}
