// ABOUTME: Sentiment scorer implementation backed by the govader VADER port
// ABOUTME: Produces compound polarity scores in [-1,1] for article text

package vader

import (
	"github.com/jonreiter/govader"
)

// Scorer implements the SentimentScorer interface using a pre-trained
// VADER lexicon. The analyzer is read-only after construction, so one
// Scorer can be shared across concurrent requests.
type Scorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewScorer creates a VADER-backed sentiment scorer
func NewScorer() *Scorer {
	return &Scorer{
		analyzer: govader.NewSentimentIntensityAnalyzer(),
	}
}

// Compound returns the compound polarity score for the text
func (s *Scorer) Compound(text string) float64 {
	if text == "" {
		return 0
	}
	return s.analyzer.PolarityScores(text).Compound
}
