// ABOUTME: Domain model for fetched article content
// ABOUTME: Holds the resolved domain, title and plain text handed to the scoring engine

package domain

// Article is the result of fetching and extracting a URL
type Article struct {
	// URL is the original article URL
	URL string `json:"url"`

	// Domain is the normalized publishing domain resolved from the URL
	Domain string `json:"domain"`

	// Title is the page or article title, may be empty
	Title string `json:"title"`

	// Text is the extracted plain article text
	Text string `json:"text"`
}
