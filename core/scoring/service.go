// ABOUTME: Service layer implementation for the credibility scoring engine
// ABOUTME: Combines source reputation and text signals into a weighted final score

package scoring

import (
	"context"
	"math"
	"regexp"
	"strings"

	"credcheck-api/core/domain"
	coreerrors "credcheck-api/core/errors"
	"credcheck-api/core/interfaces"
)

// Final score weighting: source reputation carries more weight than
// content heuristics.
const (
	weightSource  = 0.6
	weightContent = 0.4
)

// Service is the credibility scoring engine. It is stateless per
// invocation; the lexicon and compiled patterns are loaded once and shared
// read-only, so a single Service is safe for concurrent use.
type Service struct {
	lexicon      Lexicon
	reliable     map[string]struct{}
	unreliable   map[string]struct{}
	clickbaitRes []*regexp.Regexp
	sentiment    interfaces.SentimentScorer
	logger       interfaces.Logger
}

// NewService builds a scoring engine from a lexicon and its dependencies.
// Returns an error if a clickbait pattern fails to compile.
func NewService(lexicon Lexicon, deps interfaces.Dependencies) (*Service, error) {
	svc := &Service{
		lexicon:    lexicon,
		reliable:   domainSet(lexicon.ReliableDomains),
		unreliable: domainSet(lexicon.UnreliableDomains),
		sentiment:  deps.Sentiment,
		logger:     deps.Logger,
	}

	for _, pattern := range lexicon.ClickbaitPatterns {
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			return nil, coreerrors.WrapError(err, "compile clickbait pattern")
		}
		svc.clickbaitRes = append(svc.clickbaitRes, re)
	}

	return svc, nil
}

// domainSet builds a lookup set of normalized domains
func domainSet(domains []string) map[string]struct{} {
	set := make(map[string]struct{}, len(domains))
	for _, d := range domains {
		if host := normalizeDomain(d); host != "" {
			set[host] = struct{}{}
		}
	}
	return set
}

// Analyze scores the credibility of an article. The input text must be
// non-empty; Domain may be empty for pasted text, which falls back to the
// neutral source score.
func (s *Service) Analyze(ctx context.Context, input domain.AnalysisInput) (*domain.AnalysisResult, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, &coreerrors.InvalidInputError{
			Field:   "text",
			Message: "article text cannot be empty",
		}
	}

	category, sourceScore := s.classifySource(input.Domain)
	signals, contentScore := s.extractSignals(input.Title, input.Text)

	finalScore := combineScores(sourceScore, contentScore)

	result := &domain.AnalysisResult{
		FinalScore:     finalScore,
		Tier:           domain.TierForScore(finalScore),
		SourceScore:    sourceScore,
		ContentScore:   contentScore,
		Signals:        signals,
		DomainCategory: category,
	}

	if s.logger != nil {
		s.logger.Debug("Analysis complete", map[string]interface{}{
			"domain":          input.Domain,
			"domain_category": string(category),
			"source_score":    sourceScore,
			"content_score":   contentScore,
			"final_score":     finalScore,
			"tier":            string(result.Tier),
		})
	}

	return result, nil
}

// combineScores applies the fixed source/content weighting and rounds to
// an integer in [0,100]
func combineScores(sourceScore, contentScore float64) int {
	combined := weightSource*sourceScore + weightContent*contentScore
	return int(math.Round(clampScore(combined)))
}

// clampScore bounds a sub-score to [0,100]
func clampScore(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(100, v))
}
