// ABOUTME: Service layer implementation for article fetching and text extraction
// ABOUTME: Resolves a URL into its publishing domain and plain text using go-readability with a goquery fallback

package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"credcheck-api/core/domain"
	coreerrors "credcheck-api/core/errors"
	"credcheck-api/core/interfaces"
	htmlutil "credcheck-api/pkg/utils/html"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

const (
	// maxArticleRunes caps the text handed to the scoring engine
	maxArticleRunes = 5000

	// maxBodyBytes guards against pathological responses
	maxBodyBytes = 5 * 1024 * 1024

	articleCacheTTL = time.Hour
)

// Service fetches URLs and extracts readable article text
type Service struct {
	deps interfaces.Dependencies
}

// NewService creates a new extraction service instance
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{deps: deps}
}

// ExtractArticle fetches rawURL and returns the resolved domain, title and
// plain article text. Fetch and extraction failures surface as FetchError
// so the caller can short-circuit before scoring.
func (s *Service) ExtractArticle(ctx context.Context, rawURL string) (*domain.Article, error) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, &coreerrors.InvalidInputError{
			Field:   "url",
			Message: "must be an absolute http(s) URL",
		}
	}

	// Check cache first
	cacheKey := "article:" + parsed.String()
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var cached domain.Article
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	body, err := s.fetch(ctx, parsed.String())
	if err != nil {
		return nil, err
	}

	article := s.extract(parsed, body)
	if article.Text == "" {
		return nil, &coreerrors.FetchError{
			URL:     parsed.String(),
			Message: "no article content could be extracted",
		}
	}

	// Cache successful extractions
	if s.deps.Cache != nil {
		if data, err := json.Marshal(article); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, articleCacheTTL)
		}
	}

	return article, nil
}

// fetch retrieves the page body, rejecting error statuses and non-HTML
// content types
func (s *Service) fetch(ctx context.Context, pageURL string) ([]byte, error) {
	resp, err := s.deps.HTTPClient.Get(ctx, pageURL)
	if err != nil {
		return nil, &coreerrors.FetchError{URL: pageURL, Message: err.Error()}
	}
	defer resp.Body().Close()

	if resp.StatusCode() >= 400 {
		return nil, &coreerrors.FetchError{
			URL:        pageURL,
			StatusCode: resp.StatusCode(),
			Message:    "the website returned an error",
		}
	}

	if ct := resp.Header("Content-Type"); ct != "" &&
		!strings.Contains(ct, "html") && !strings.Contains(ct, "text/plain") {
		return nil, &coreerrors.FetchError{
			URL:     pageURL,
			Message: fmt.Sprintf("unsupported content type %q", ct),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body(), maxBodyBytes))
	if err != nil {
		return nil, &coreerrors.FetchError{URL: pageURL, Message: err.Error()}
	}
	return body, nil
}

// extract pulls the title and plain text out of the page, preferring
// readability's article detection and falling back to a paragraph scrape.
func (s *Service) extract(pageURL *url.URL, body []byte) *domain.Article {
	result := &domain.Article{
		URL:    pageURL.String(),
		Domain: strings.TrimPrefix(strings.ToLower(pageURL.Hostname()), "www."),
	}

	if article, err := readability.FromReader(bytes.NewReader(body), pageURL); err == nil {
		result.Title = htmlutil.StripHTML(article.Title)
		result.Text = htmlutil.CollapseWhitespace(article.TextContent)
	} else {
		s.deps.Logger.Debug("Readability extraction failed, using fallback", map[string]interface{}{
			"url":   pageURL.String(),
			"error": err.Error(),
		})
	}

	if result.Text == "" {
		title, text := fallbackExtract(body)
		if result.Title == "" {
			result.Title = title
		}
		result.Text = text
	}

	result.Text = htmlutil.TruncateRunes(result.Text, maxArticleRunes)
	return result
}

// fallbackExtract gathers paragraph text and the page title with goquery
// when readability cannot identify an article body
func fallbackExtract(body []byte) (title, text string) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", htmlutil.StripHTML(string(body))
	}

	doc.Find("script, style, noscript").Remove()

	title = htmlutil.CollapseWhitespace(doc.Find("title").First().Text())

	var parts []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if t := htmlutil.CollapseWhitespace(sel.Text()); t != "" {
			parts = append(parts, t)
		}
	})

	return title, strings.Join(parts, " ")
}
