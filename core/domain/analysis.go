// ABOUTME: Domain models for credibility analysis results
// ABOUTME: Defines scores, tiers, bias labels and the signal set returned per analysis

package domain

// Tier is the coarse credibility bucket derived from the final score
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

// DomainCategory classifies a publishing domain against the reputation lists
type DomainCategory string

const (
	CategoryReliable   DomainCategory = "reliable"
	CategoryUnreliable DomainCategory = "unreliable"
	CategoryUnknown    DomainCategory = "unknown"
)

// BiasLabel is the political-bias tag derived from keyword tallies.
// It is reported alongside the score but never folded into it.
type BiasLabel string

const (
	BiasLeft    BiasLabel = "left"
	BiasRight   BiasLabel = "right"
	BiasNeutral BiasLabel = "neutral"
)

// AnalysisInput is the pair of inputs the scoring engine operates on.
// Domain is empty in pasted-text mode; Title is empty when extraction
// found none.
type AnalysisInput struct {
	Domain string
	Title  string
	Text   string
}

// SignalSet holds the individual text signals that contributed to the
// content score
type SignalSet struct {
	// SentimentScore is the VADER compound polarity in [-1,1]
	SentimentScore float64 `json:"sentiment_score"`

	// ClickbaitHits counts matched suspicious phrases and clickbait patterns
	ClickbaitHits int `json:"clickbait_hits"`

	// SuspiciousTerms lists up to five of the matched suspicious phrases
	SuspiciousTerms []string `json:"suspicious_terms,omitempty"`

	// BiasLabel is left/right/neutral from keyword tallies
	BiasLabel BiasLabel `json:"bias_label"`

	// BiasStrength is the normalized tally difference in [0,1]
	BiasStrength float64 `json:"bias_strength"`

	// LeftTerms and RightTerms list up to five matched keywords per side
	LeftTerms  []string `json:"left_terms,omitempty"`
	RightTerms []string `json:"right_terms,omitempty"`

	// Objectivity estimates neutral-language density in [0,1]
	Objectivity float64 `json:"objectivity"`

	// LowConfidence is set when the text is too short to trust the signals
	LowConfidence bool `json:"low_confidence"`
}

// AnalysisResult is the complete outcome of one credibility analysis.
// It is created fresh per request and never mutated afterwards.
type AnalysisResult struct {
	FinalScore     int            `json:"final_score"`
	Tier           Tier           `json:"tier"`
	SourceScore    float64        `json:"source_score"`
	ContentScore   float64        `json:"content_score"`
	Signals        SignalSet      `json:"signals"`
	DomainCategory DomainCategory `json:"domain_category"`
}

// TierForScore maps a final score to its display tier.
// Boundaries are inclusive at the bottom of each band: 70+ is high,
// 40-69 is medium, below 40 is low.
func TierForScore(score int) Tier {
	switch {
	case score >= 70:
		return TierHigh
	case score >= 40:
		return TierMedium
	default:
		return TierLow
	}
}
