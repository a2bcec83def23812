// ABOUTME: HTML utilities for stripping tags and normalizing extracted text
// ABOUTME: Provides common HTML processing functions used across the application

package html

import (
	"strings"

	xhtml "golang.org/x/net/html"
)

// StripHTML removes markup from a string and returns the visible text with
// entities decoded and whitespace collapsed. Script and style content is
// dropped entirely.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return CollapseWhitespace(s)
	}

	tokenizer := xhtml.NewTokenizer(strings.NewReader(s))
	var b strings.Builder
	skipDepth := 0

	for {
		switch tokenizer.Next() {
		case xhtml.ErrorToken:
			// io.EOF or malformed input; either way return what we have
			return CollapseWhitespace(b.String())
		case xhtml.StartTagToken:
			name, _ := tokenizer.TagName()
			if isInvisible(string(name)) {
				skipDepth++
			}
		case xhtml.EndTagToken:
			name, _ := tokenizer.TagName()
			if isInvisible(string(name)) && skipDepth > 0 {
				skipDepth--
			}
		case xhtml.TextToken:
			if skipDepth == 0 {
				b.Write(tokenizer.Text())
				b.WriteByte(' ')
			}
		}
	}
}

func isInvisible(tag string) bool {
	return tag == "script" || tag == "style" || tag == "noscript"
}

// CollapseWhitespace trims the string and folds runs of whitespace,
// including newlines, into single spaces
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TruncateRunes shortens a string to at most n runes without splitting a
// multi-byte character
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
