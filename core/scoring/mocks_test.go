package scoring

import (
	"testing"

	"credcheck-api/core/interfaces"
)

// stubSentiment is a deterministic SentimentScorer returning a fixed compound
type stubSentiment struct {
	compound float64
}

func (s stubSentiment) Compound(text string) float64 {
	return s.compound
}

// mockLogger is a no-op Logger for tests
type mockLogger struct{}

func (mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (mockLogger) Info(msg string, fields map[string]interface{})  {}
func (mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (mockLogger) Error(msg string, fields map[string]interface{}) {}

// testDeps returns a Dependencies container with a neutral stub scorer
func testDeps() interfaces.Dependencies {
	return interfaces.Dependencies{
		Logger:    mockLogger{},
		Sentiment: stubSentiment{},
	}
}

// newTestService builds an engine with the default lexicon and a stubbed
// polarity scorer
func newTestService(t *testing.T, compound float64) *Service {
	t.Helper()

	svc, err := NewService(DefaultLexicon(), interfaces.Dependencies{
		Logger:    mockLogger{},
		Sentiment: stubSentiment{compound: compound},
	})
	if err != nil {
		t.Fatalf("NewService returned error: %v", err)
	}
	return svc
}

// neutralText has no suspicious phrases, clickbait patterns or bias
// keywords, and is comfortably above the low-confidence threshold.
const neutralText = "The city council met on Tuesday to review the annual budget " +
	"proposal. Members discussed road maintenance plans and approved funding " +
	"for two new library branches after a short public comment period."
