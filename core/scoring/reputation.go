// ABOUTME: Domain reputation lookup for the scoring engine
// ABOUTME: Normalizes domain strings and classifies them against the curated reputation lists

package scoring

import (
	"strings"

	"credcheck-api/core/domain"
)

// Source sub-scores assigned per domain category.
const (
	sourceScoreReliable   = 90.0
	sourceScoreUnreliable = 10.0
	sourceScoreUnknown    = 50.0
)

// normalizeDomain reduces a raw domain or URL string to a bare lowercase
// host: scheme, path, query, port, and a leading "www." are stripped.
// Returns an empty string when nothing usable remains.
func normalizeDomain(raw string) string {
	s := strings.TrimSpace(strings.ToLower(raw))

	if idx := strings.Index(s, "://"); idx != -1 {
		s = s[idx+3:]
	}
	if idx := strings.IndexAny(s, "/?#"); idx != -1 {
		s = s[:idx]
	}
	if idx := strings.Index(s, "@"); idx != -1 {
		s = s[idx+1:]
	}
	if idx := strings.Index(s, ":"); idx != -1 {
		s = s[:idx]
	}
	s = strings.TrimPrefix(s, "www.")
	s = strings.Trim(s, ".")

	if !strings.Contains(s, ".") {
		return ""
	}
	return s
}

// matchesDomainSet reports whether host or any of its parent domains is in
// the set, so "edition.cnn.com" matches a listed "cnn.com".
func matchesDomainSet(host string, set map[string]struct{}) bool {
	for host != "" {
		if _, ok := set[host]; ok {
			return true
		}
		idx := strings.Index(host, ".")
		if idx == -1 {
			return false
		}
		host = host[idx+1:]
		// A bare TLD is never a meaningful match
		if !strings.Contains(host, ".") {
			return false
		}
	}
	return false
}

// classifySource returns the domain category and source sub-score for a raw
// domain string. An absent or malformed domain degrades to unknown rather
// than failing.
func (s *Service) classifySource(rawDomain string) (domain.DomainCategory, float64) {
	host := normalizeDomain(rawDomain)
	if host == "" {
		return domain.CategoryUnknown, sourceScoreUnknown
	}

	if matchesDomainSet(host, s.unreliable) {
		return domain.CategoryUnreliable, sourceScoreUnreliable
	}
	if matchesDomainSet(host, s.reliable) {
		return domain.CategoryReliable, sourceScoreReliable
	}
	return domain.CategoryUnknown, sourceScoreUnknown
}
