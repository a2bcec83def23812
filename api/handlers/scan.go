// ABOUTME: Scan handler for analyzing the articles linked from a site front page
// ABOUTME: Discovers article links and scores each one with bounded concurrency

package handlers

import (
	"context"
	"net/http"
	"sync"

	"credcheck-api/api/dto/requests"
	"credcheck-api/api/dto/responses"
	"credcheck-api/core/domain"
	"credcheck-api/core/interfaces"
	"github.com/danielgtaylor/huma/v2"
)

// scanConcurrency caps how many articles are fetched and scored at once
const scanConcurrency = 5

// ScanHandler handles site scan requests
type ScanHandler struct {
	analysis interfaces.AnalysisService
	extract  interfaces.ExtractService
	discover interfaces.DiscoverService
	logger   interfaces.Logger
}

// NewScanHandler creates a new scan handler
func NewScanHandler(analysis interfaces.AnalysisService, extract interfaces.ExtractService, discover interfaces.DiscoverService, logger interfaces.Logger) *ScanHandler {
	return &ScanHandler{
		analysis: analysis,
		extract:  extract,
		discover: discover,
		logger:   logger,
	}
}

// RegisterRoutes registers scan routes
func (h *ScanHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "scanSite",
		Method:      http.MethodPost,
		Path:        "/scan",
		Summary:     "Scan a site front page and score its articles",
		Description: "Discovers article links on the given front page and runs a credibility analysis on each. Per-article failures are reported inline and do not fail the scan.",
		Tags:        []string{"Analysis"},
	}, h.Scan)
}

// ScanInput defines the input for a site scan
type ScanInput struct {
	Body requests.ScanRequest
}

// ScanOutput defines the output for a site scan
type ScanOutput struct {
	Body responses.ScanResponse
}

// Scan handles the POST /scan endpoint
func (h *ScanHandler) Scan(ctx context.Context, input *ScanInput) (*ScanOutput, error) {
	input.Body.ApplyDefaults()

	links, err := h.discover.DiscoverArticleLinks(ctx, input.Body.URL, input.Body.Limit)
	if err != nil {
		return nil, toHumaError(err)
	}

	h.logger.Info("Scanning discovered articles", map[string]interface{}{
		"site":  input.Body.URL,
		"count": len(links),
	})

	// Process articles concurrently, bounded by a semaphore
	results := make([]responses.ScanArticleResult, len(links))
	sem := make(chan struct{}, scanConcurrency)
	var wg sync.WaitGroup

	for i, link := range links {
		wg.Add(1)
		go func(idx int, articleURL string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results[idx] = h.analyzeOne(ctx, articleURL)
		}(i, link)
	}

	wg.Wait()

	output := &ScanOutput{}
	output.Body.Site = input.Body.URL
	output.Body.Articles = results
	return output, nil
}

// analyzeOne fetches and scores a single discovered article
func (h *ScanHandler) analyzeOne(ctx context.Context, articleURL string) responses.ScanArticleResult {
	article, err := h.extract.ExtractArticle(ctx, articleURL)
	if err != nil {
		return responses.ScanArticleResult{
			URL:    articleURL,
			Status: "error",
			Error:  err.Error(),
		}
	}

	result, err := h.analysis.Analyze(ctx, domain.AnalysisInput{
		Domain: article.Domain,
		Title:  article.Title,
		Text:   article.Text,
	})
	if err != nil {
		return responses.ScanArticleResult{
			URL:    articleURL,
			Status: "error",
			Error:  err.Error(),
		}
	}

	response := responses.NewAnalysisResponse(result)
	response.URL = article.URL
	response.Domain = article.Domain
	response.Title = article.Title

	return responses.ScanArticleResult{
		URL:      articleURL,
		Status:   "ok",
		Analysis: &response,
	}
}
