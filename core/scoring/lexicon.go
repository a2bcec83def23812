// ABOUTME: Lexicon configuration for the credibility scoring engine
// ABOUTME: Holds curated domain reputation lists and keyword lists, with optional YAML overrides

package scoring

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Lexicon holds the curated word and domain lists the engine scores against.
// It is loaded once at startup and treated as read-only afterwards, so a
// single Lexicon can be shared across concurrent requests.
type Lexicon struct {
	// ReliableDomains are established outlets that raise the source score
	ReliableDomains []string `yaml:"reliable_domains"`

	// UnreliableDomains are outlets flagged as untrustworthy
	UnreliableDomains []string `yaml:"unreliable_domains"`

	// LeftKeywords and RightKeywords feed the political-bias tally
	LeftKeywords  []string `yaml:"left_keywords"`
	RightKeywords []string `yaml:"right_keywords"`

	// NeutralKeywords indicate measured, sourced language
	NeutralKeywords []string `yaml:"neutral_keywords"`

	// PolarizingKeywords indicate emotionally charged language
	PolarizingKeywords []string `yaml:"polarizing_keywords"`

	// SuspiciousPhrases are phrases that commonly appear in fabricated stories
	SuspiciousPhrases []string `yaml:"suspicious_phrases"`

	// ClickbaitPatterns are regular expressions matching clickbait structures
	ClickbaitPatterns []string `yaml:"clickbait_patterns"`
}

// DefaultLexicon returns the built-in curated lists
func DefaultLexicon() Lexicon {
	return Lexicon{
		ReliableDomains: []string{
			"reuters.com", "ap.org", "bbc.com", "npr.org",
			"nytimes.com", "washingtonpost.com", "cnn.com",
			"abcnews.go.com", "cbsnews.com", "nbcnews.com",
		},
		UnreliableDomains: []string{
			"naturalnews.com", "infowars.com", "beforeitsnews.com",
			"worldnewsdailyreport.com", "nationalreport.net",
			"empirenews.net", "huzlers.com", "clickhole.com",
		},
		LeftKeywords: []string{
			"progressive", "social justice", "inequality", "systemic racism",
			"climate change", "wealth gap", "corporate greed", "workers rights",
			"medicare for all", "gun control", "reproductive rights", "diversity",
			"inclusion", "marginalized", "oppression", "privilege", "fascist",
			"far-right", "extremist", "nazi", "white supremacist", "resistance",
			"grassroots", "community organizing", "environmental justice",
		},
		RightKeywords: []string{
			"traditional values", "family values", "constitutional rights", "freedom",
			"liberty", "patriot", "america first", "law and order", "border security",
			"second amendment", "pro-life", "conservative", "fiscal responsibility",
			"limited government", "free market", "socialism", "communist", "liberal elite",
			"mainstream media", "deep state", "establishment", "radical left",
			"antifa", "woke", "cancel culture", "religious freedom", "military strong",
		},
		NeutralKeywords: []string{
			"according to data", "studies show", "research indicates", "experts say",
			"both sides", "bipartisan", "compromise", "moderate", "balanced approach",
			"evidence suggests", "analysis reveals", "factual", "objective",
		},
		PolarizingKeywords: []string{
			"outrageous", "disgusting", "terrible", "disaster", "crisis", "emergency",
			"devastating", "shocking", "alarming", "dangerous", "threat", "attack",
			"destroy", "eliminate", "radical", "extreme", "unprecedented", "chaos",
		},
		SuspiciousPhrases: []string{
			"shocking", "unbelievable", "secret", "they don't want you to know",
			"doctors hate", "miracle cure", "this will blow your mind",
			"absolutely incredible", "must see", "viral", "breaking",
			"exclusive", "leaked", "exposed", "bombshell",
		},
		ClickbaitPatterns: []string{
			`\d+\s+(?:things|ways|reasons|facts)`,
			`you won't believe`,
			`what happens next`,
			`this \w+ will \w+ you`,
			`number \d+ will shock you`,
		},
	}
}

// LoadLexiconFile reads a YAML lexicon file and merges it over the defaults.
// Only lists present in the file replace the built-in ones, so a file can
// override just the domain lists while keeping the default keywords.
func LoadLexiconFile(path string) (Lexicon, error) {
	base := DefaultLexicon()

	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read lexicon file: %w", err)
	}

	var override Lexicon
	if err := yaml.Unmarshal(data, &override); err != nil {
		return base, fmt.Errorf("parse lexicon file: %w", err)
	}

	merge := func(dst *[]string, src []string) {
		if len(src) > 0 {
			*dst = src
		}
	}

	merge(&base.ReliableDomains, override.ReliableDomains)
	merge(&base.UnreliableDomains, override.UnreliableDomains)
	merge(&base.LeftKeywords, override.LeftKeywords)
	merge(&base.RightKeywords, override.RightKeywords)
	merge(&base.NeutralKeywords, override.NeutralKeywords)
	merge(&base.PolarizingKeywords, override.PolarizingKeywords)
	merge(&base.SuspiciousPhrases, override.SuspiciousPhrases)
	merge(&base.ClickbaitPatterns, override.ClickbaitPatterns)

	return base, nil
}
