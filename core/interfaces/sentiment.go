package interfaces

// SentimentScorer scores the emotional polarity of a block of text.
// The production implementation wraps a pre-trained VADER model; tests
// substitute a deterministic stub returning fixed compound values.
type SentimentScorer interface {
	// Compound returns the compound polarity score for the text in [-1,1].
	// Negative values indicate negative sentiment, positive values positive
	// sentiment, and values near zero neutral language.
	Compound(text string) float64
}
