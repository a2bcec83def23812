// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"credcheck-api/core/domain"
)

// AnalysisService scores the credibility of article content
type AnalysisService interface {
	// Analyze computes an AnalysisResult for the given input.
	// Returns an InvalidInputError if the text is empty.
	Analyze(ctx context.Context, input domain.AnalysisInput) (*domain.AnalysisResult, error)
}

// ExtractService resolves a URL into its domain and plain article text
type ExtractService interface {
	// ExtractArticle fetches the URL and extracts readable content.
	// Returns a FetchError if the page cannot be fetched or yields no text.
	ExtractArticle(ctx context.Context, url string) (*domain.Article, error)
}

// DiscoverService finds candidate article links on a site front page
type DiscoverService interface {
	// DiscoverArticleLinks collects up to limit same-host article URLs.
	DiscoverArticleLinks(ctx context.Context, siteURL string, limit int) ([]string, error)
}
