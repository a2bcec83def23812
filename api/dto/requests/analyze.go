// ABOUTME: Request DTOs for analysis and scan API endpoints
// ABOUTME: Provides validation and default values for incoming requests

package requests

import "strings"

// AnalyzeRequest represents the request body for a credibility analysis.
// Exactly one of URL or Text must be provided.
type AnalyzeRequest struct {
	// URL is an article URL to fetch, extract and score
	URL string `json:"url,omitempty" format:"uri" doc:"Article URL to fetch and score"`

	// Text is pasted article text to score directly
	Text string `json:"text,omitempty" doc:"Raw article text to score directly"`

	// Title optionally accompanies pasted text
	Title string `json:"title,omitempty" doc:"Optional headline accompanying pasted text"`
}

// Validate checks that exactly one input mode is used
func (r *AnalyzeRequest) Validate() string {
	hasURL := strings.TrimSpace(r.URL) != ""
	hasText := strings.TrimSpace(r.Text) != ""

	if !hasURL && !hasText {
		return "either url or text must be provided"
	}
	if hasURL && hasText {
		return "url and text are mutually exclusive"
	}
	return ""
}

// ScanRequest represents the request body for scanning a site front page
type ScanRequest struct {
	// URL is the site front page to scan for article links
	URL string `json:"url" required:"true" format:"uri" doc:"Site front page URL to scan"`

	// Limit caps how many discovered articles are analyzed
	Limit int `json:"limit,omitempty" minimum:"1" maximum:"25" default:"10" doc:"Maximum number of articles to analyze"`
}

// ApplyDefaults sets default values for optional fields
func (r *ScanRequest) ApplyDefaults() {
	if r.Limit == 0 {
		r.Limit = 10
	}
}
