// ABOUTME: Text signal extraction for the scoring engine
// ABOUTME: Computes sentiment, clickbait, bias and objectivity signals plus the content sub-score

package scoring

import (
	"math"
	"strings"

	"credcheck-api/core/domain"
)

const (
	contentBaseline = 100.0

	// Sentiment only penalizes when the compound magnitude crosses the
	// threshold; the penalty then scales with magnitude up to 20 points.
	sentimentThreshold    = 0.5
	sentimentPenaltyScale = 20.0

	// Clickbait penalty saturates so one repeated phrase cannot dominate
	clickbaitPerHitPenalty = 8.0
	clickbaitPenaltyCap    = 40.0

	// Texts below this word count still get scored, but flagged
	minConfidentWords = 20

	// Sentiment is scored on the title plus the opening of the body,
	// where charged framing concentrates
	sentimentSampleRunes = 1000

	maxReportedTerms = 5
)

// extractSignals computes the SignalSet and content sub-score for article
// text. The text must be non-empty; the caller validates that.
func (s *Service) extractSignals(title, text string) (domain.SignalSet, float64) {
	fullText := strings.ToLower(strings.TrimSpace(title + " " + text))
	words := len(strings.Fields(fullText))

	signals := domain.SignalSet{
		LowConfidence: words < minConfidentWords,
	}

	// Sentiment
	compound := s.sentiment.Compound(sentimentSample(title, text))
	compound = sanitizeCompound(compound)
	signals.SentimentScore = compound

	sentimentPenalty := 0.0
	if math.Abs(compound) >= sentimentThreshold {
		sentimentPenalty = math.Abs(compound) * sentimentPenaltyScale
	}

	// Clickbait and suspicious phrasing
	hits := 0
	for _, phrase := range s.lexicon.SuspiciousPhrases {
		if strings.Contains(fullText, strings.ToLower(phrase)) {
			hits++
			if len(signals.SuspiciousTerms) < maxReportedTerms {
				signals.SuspiciousTerms = append(signals.SuspiciousTerms, phrase)
			}
		}
	}
	for _, re := range s.clickbaitRes {
		if re.MatchString(fullText) {
			hits++
		}
	}
	signals.ClickbaitHits = hits
	clickbaitPenalty := math.Min(clickbaitPenaltyCap, float64(hits)*clickbaitPerHitPenalty)

	// Political bias is reported, never penalized: a slanted article is
	// not the same thing as an inaccurate one.
	left, leftTerms := countKeywords(fullText, s.lexicon.LeftKeywords)
	right, rightTerms := countKeywords(fullText, s.lexicon.RightKeywords)
	signals.LeftTerms = leftTerms
	signals.RightTerms = rightTerms
	signals.BiasLabel, signals.BiasStrength = biasFromTallies(left, right, words)

	// Objectivity: density of sourced language minus polarizing language
	neutral, _ := countKeywords(fullText, s.lexicon.NeutralKeywords)
	polarizing, _ := countKeywords(fullText, s.lexicon.PolarizingKeywords)
	signals.Objectivity = objectivityScore(neutral, polarizing, words)

	contentScore := clampScore(contentBaseline - sentimentPenalty - clickbaitPenalty)
	return signals, contentScore
}

// sentimentSample builds the text slice fed to the polarity scorer: the
// title plus the first portion of the body.
func sentimentSample(title, text string) string {
	runes := []rune(text)
	if len(runes) > sentimentSampleRunes {
		runes = runes[:sentimentSampleRunes]
	}
	return strings.TrimSpace(title + " " + string(runes))
}

// sanitizeCompound clamps the polarity score to [-1,1] and maps non-finite
// values to a neutral zero so they can never reach the result.
func sanitizeCompound(c float64) float64 {
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return 0
	}
	return math.Max(-1, math.Min(1, c))
}

// countKeywords tallies substring occurrences of each keyword in the text
// and returns the matched keywords, capped for reporting.
func countKeywords(lowerText string, keywords []string) (int, []string) {
	total := 0
	var found []string
	for _, kw := range keywords {
		n := strings.Count(lowerText, strings.ToLower(kw))
		if n > 0 {
			total += n
			if len(found) < maxReportedTerms {
				found = append(found, kw)
			}
		}
	}
	return total, found
}

// biasFromTallies derives the bias label and strength from the left/right
// keyword tallies. The label goes to whichever side has strictly more hits;
// a tie, including zero/zero, is neutral. Strength is the tally difference
// relative to one percent of the word count, clamped to [0,1].
func biasFromTallies(left, right, words int) (domain.BiasLabel, float64) {
	label := domain.BiasNeutral
	switch {
	case left > right:
		label = domain.BiasLeft
	case right > left:
		label = domain.BiasRight
	}

	diff := math.Abs(float64(left - right))
	denom := math.Max(1, float64(words)*0.01)
	strength := math.Min(1, diff/denom)
	if math.IsNaN(strength) || math.IsInf(strength, 0) {
		strength = 0
	}
	return label, strength
}

// objectivityScore estimates how measured the language is in [0,1]
func objectivityScore(neutral, polarizing, words int) float64 {
	if words == 0 {
		return 0.5
	}
	score := math.Min(1, float64(neutral)/math.Max(float64(words)*0.01, 1))
	penalty := math.Min(0.5, float64(polarizing)/math.Max(float64(words)*0.005, 1))
	return math.Max(0, score-penalty)
}
