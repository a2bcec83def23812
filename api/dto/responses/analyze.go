// ABOUTME: Response DTOs for analysis and scan API endpoints
// ABOUTME: Maps domain analysis results to their JSON wire representation

package responses

import "credcheck-api/core/domain"

// SignalsResponse is the per-analysis signal breakdown
type SignalsResponse struct {
	SentimentScore  float64  `json:"sentiment_score" doc:"Compound sentiment polarity in [-1,1]"`
	ClickbaitHits   int      `json:"clickbait_hits" doc:"Count of matched clickbait and suspicious phrases"`
	SuspiciousTerms []string `json:"suspicious_terms,omitempty" doc:"Sample of matched suspicious phrases"`
	BiasLabel       string   `json:"bias_label" doc:"Political bias tag: left, right or neutral"`
	BiasStrength    float64  `json:"bias_strength" doc:"Normalized bias tally difference in [0,1]"`
	LeftTerms       []string `json:"left_terms,omitempty" doc:"Sample of matched left-leaning keywords"`
	RightTerms      []string `json:"right_terms,omitempty" doc:"Sample of matched right-leaning keywords"`
	Objectivity     float64  `json:"objectivity" doc:"Neutral-language density estimate in [0,1]"`
	LowConfidence   bool     `json:"low_confidence" doc:"Set when the text is too short to trust the signals"`
}

// AnalysisResponse is the JSON representation of one credibility analysis
type AnalysisResponse struct {
	URL            string          `json:"url,omitempty" doc:"Analyzed article URL, absent in pasted-text mode"`
	Domain         string          `json:"domain,omitempty" doc:"Normalized publishing domain"`
	Title          string          `json:"title,omitempty" doc:"Article title when one was found"`
	FinalScore     int             `json:"final_score" doc:"Overall credibility score from 0 to 100"`
	Tier           string          `json:"tier" doc:"Credibility tier: high, medium or low"`
	SourceScore    float64         `json:"source_score" doc:"Domain reputation component"`
	ContentScore   float64         `json:"content_score" doc:"Text heuristics component"`
	DomainCategory string          `json:"domain_category" doc:"Domain reputation bucket: reliable, unreliable or unknown"`
	Signals        SignalsResponse `json:"signals" doc:"Individual text signals behind the content score"`
}

// NewAnalysisResponse maps a domain result to its wire form
func NewAnalysisResponse(result *domain.AnalysisResult) AnalysisResponse {
	return AnalysisResponse{
		FinalScore:     result.FinalScore,
		Tier:           string(result.Tier),
		SourceScore:    result.SourceScore,
		ContentScore:   result.ContentScore,
		DomainCategory: string(result.DomainCategory),
		Signals: SignalsResponse{
			SentimentScore:  result.Signals.SentimentScore,
			ClickbaitHits:   result.Signals.ClickbaitHits,
			SuspiciousTerms: result.Signals.SuspiciousTerms,
			BiasLabel:       string(result.Signals.BiasLabel),
			BiasStrength:    result.Signals.BiasStrength,
			LeftTerms:       result.Signals.LeftTerms,
			RightTerms:      result.Signals.RightTerms,
			Objectivity:     result.Signals.Objectivity,
			LowConfidence:   result.Signals.LowConfidence,
		},
	}
}

// ScanArticleResult is the outcome for a single discovered article
type ScanArticleResult struct {
	URL      string            `json:"url" doc:"Discovered article URL"`
	Status   string            `json:"status" doc:"Analysis status: 'ok' or 'error'"`
	Error    string            `json:"error,omitempty" doc:"Error message if the article could not be analyzed"`
	Analysis *AnalysisResponse `json:"analysis,omitempty" doc:"Credibility analysis when status is 'ok'"`
}

// ScanResponse is the JSON representation of a site scan
type ScanResponse struct {
	Site     string              `json:"site" doc:"Scanned front page URL"`
	Articles []ScanArticleResult `json:"articles" doc:"Per-article analysis results"`
}
