// ABOUTME: Analyze handler for scoring article credibility from a URL or pasted text
// ABOUTME: Caches full URL-mode results so repeat lookups skip the fetch and scoring

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"credcheck-api/api/dto/requests"
	"credcheck-api/api/dto/responses"
	"credcheck-api/core/domain"
	"credcheck-api/core/interfaces"
	"github.com/danielgtaylor/huma/v2"
)

const analysisCacheTTL = 30 * time.Minute

// AnalyzeHandler handles credibility analysis requests
type AnalyzeHandler struct {
	analysis interfaces.AnalysisService
	extract  interfaces.ExtractService
	deps     interfaces.Dependencies
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(analysis interfaces.AnalysisService, extract interfaces.ExtractService, deps interfaces.Dependencies) *AnalyzeHandler {
	return &AnalyzeHandler{
		analysis: analysis,
		extract:  extract,
		deps:     deps,
	}
}

// RegisterRoutes registers analyze routes
func (h *AnalyzeHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "analyzeArticle",
		Method:      http.MethodPost,
		Path:        "/analyze",
		Summary:     "Score the credibility of an article",
		Description: "Scores an article given either its URL or pasted text. URL mode fetches and extracts the article first; text mode scores the text directly with no domain reputation input.",
		Tags:        []string{"Analysis"},
	}, h.Analyze)
}

// AnalyzeInput defines the input for credibility analysis
type AnalyzeInput struct {
	Body requests.AnalyzeRequest
}

// AnalyzeOutput defines the output for credibility analysis
type AnalyzeOutput struct {
	Body responses.AnalysisResponse
}

// Analyze handles the POST /analyze endpoint
func (h *AnalyzeHandler) Analyze(ctx context.Context, input *AnalyzeInput) (*AnalyzeOutput, error) {
	if msg := input.Body.Validate(); msg != "" {
		return nil, huma.Error400BadRequest(msg)
	}

	if input.Body.URL != "" {
		return h.analyzeURL(ctx, input.Body.URL)
	}
	return h.analyzeText(ctx, input.Body.Title, input.Body.Text)
}

// analyzeURL fetches, extracts and scores an article by URL
func (h *AnalyzeHandler) analyzeURL(ctx context.Context, url string) (*AnalyzeOutput, error) {
	cacheKey := "analysis:" + url

	if cached := h.cachedResponse(ctx, cacheKey); cached != nil {
		return &AnalyzeOutput{Body: *cached}, nil
	}

	article, err := h.extract.ExtractArticle(ctx, url)
	if err != nil {
		return nil, toHumaError(err)
	}

	result, err := h.analysis.Analyze(ctx, domain.AnalysisInput{
		Domain: article.Domain,
		Title:  article.Title,
		Text:   article.Text,
	})
	if err != nil {
		return nil, toHumaError(err)
	}

	response := responses.NewAnalysisResponse(result)
	response.URL = article.URL
	response.Domain = article.Domain
	response.Title = article.Title

	h.storeResponse(ctx, cacheKey, response)

	return &AnalyzeOutput{Body: response}, nil
}

// analyzeText scores pasted text directly, with no domain reputation input
func (h *AnalyzeHandler) analyzeText(ctx context.Context, title, text string) (*AnalyzeOutput, error) {
	result, err := h.analysis.Analyze(ctx, domain.AnalysisInput{
		Title: title,
		Text:  text,
	})
	if err != nil {
		return nil, toHumaError(err)
	}

	response := responses.NewAnalysisResponse(result)
	response.Title = title

	return &AnalyzeOutput{Body: response}, nil
}

// cachedResponse returns a previously stored response for the key, or nil
func (h *AnalyzeHandler) cachedResponse(ctx context.Context, key string) *responses.AnalysisResponse {
	if h.deps.Cache == nil {
		return nil
	}

	data, err := h.deps.Cache.Get(ctx, key)
	if err != nil {
		return nil
	}

	var response responses.AnalysisResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil
	}

	h.deps.Logger.Debug("Analysis cache hit", map[string]interface{}{
		"key": key,
	})
	return &response
}

// storeResponse caches a response, logging but not failing on errors
func (h *AnalyzeHandler) storeResponse(ctx context.Context, key string, response responses.AnalysisResponse) {
	if h.deps.Cache == nil {
		return
	}

	data, err := json.Marshal(response)
	if err != nil {
		return
	}

	if err := h.deps.Cache.Set(ctx, key, data, analysisCacheTTL); err != nil {
		h.deps.Logger.Warn("Failed to cache analysis", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}
