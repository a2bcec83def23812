// ABOUTME: Discovery service for collecting candidate article links from a site front page
// ABOUTME: Uses a colly collector restricted to the site host with simple article-path heuristics

package discover

import (
	"context"
	"net/url"
	"regexp"
	"strings"
	"time"

	coreerrors "credcheck-api/core/errors"
	"credcheck-api/core/interfaces"

	"github.com/gocolly/colly"
)

const (
	defaultLimit   = 10
	maxLimit       = 25
	requestTimeout = 10 * time.Second
	userAgent      = "CredCheckAPI/1.0"
)

// skipExtensions are asset links that are never articles
var skipExtensions = regexp.MustCompile(`(?i)\.(png|jpe?g|gif|svg|webp|css|js|ico|pdf|xml|zip|mp3|mp4)$`)

// articlePathHint matches paths that look like stories: dated paths,
// slugs with hyphens, or common section prefixes.
var articlePathHint = regexp.MustCompile(`(/\d{4}/|/news/|/article|/story|/politics/|/world/|[a-z0-9]+(?:-[a-z0-9]+){2,})`)

// Service collects article links from news site front pages
type Service struct {
	logger interfaces.Logger
}

// NewService creates a new discovery service instance
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{logger: deps.Logger}
}

// DiscoverArticleLinks visits siteURL and returns up to limit same-host
// links that look like articles. The collector stays on the start page,
// so a single request serves the whole scan.
func (s *Service) DiscoverArticleLinks(ctx context.Context, siteURL string, limit int) ([]string, error) {
	parsed, err := url.Parse(strings.TrimSpace(siteURL))
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, &coreerrors.InvalidInputError{
			Field:   "url",
			Message: "must be an absolute http(s) URL",
		}
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c := colly.NewCollector(
		colly.AllowedDomains(parsed.Host, parsed.Hostname()),
		colly.MaxDepth(1),
		colly.UserAgent(userAgent),
		colly.MaxBodySize(5*1024*1024),
	)
	c.SetRequestTimeout(requestTimeout)

	seen := make(map[string]struct{})
	var links []string

	c.OnHTML("a[href]", func(e *colly.HTMLElement) {
		if len(links) >= limit {
			return
		}
		link := e.Request.AbsoluteURL(e.Attr("href"))
		if !looksLikeArticle(link, parsed) {
			return
		}
		if _, dup := seen[link]; dup {
			return
		}
		seen[link] = struct{}{}
		links = append(links, link)
	})

	if err := c.Visit(parsed.String()); err != nil {
		return nil, &coreerrors.FetchError{URL: parsed.String(), Message: err.Error()}
	}

	s.logger.Debug("Discovered article links", map[string]interface{}{
		"site":  parsed.Hostname(),
		"count": len(links),
	})

	return links, nil
}

// looksLikeArticle filters a candidate link down to same-host story pages
func looksLikeArticle(link string, site *url.URL) bool {
	if link == "" {
		return false
	}
	u, err := url.Parse(link)
	if err != nil || u.Hostname() != site.Hostname() {
		return false
	}
	path := strings.TrimSuffix(u.Path, "/")
	if path == "" || path == site.Path {
		return false
	}
	if skipExtensions.MatchString(path) {
		return false
	}
	return articlePathHint.MatchString(strings.ToLower(path))
}
