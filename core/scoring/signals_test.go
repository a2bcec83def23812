package scoring

import (
	"context"
	"math"
	"testing"

	"credcheck-api/core/domain"
)

func TestAnalyze_SentimentBelowThresholdNoPenalty(t *testing.T) {
	svc := newTestService(t, 0.49)

	result, err := svc.Analyze(context.Background(), domain.AnalysisInput{Text: neutralText})

	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if result.ContentScore != 100 {
		t.Errorf("ContentScore = %v, want 100 when |compound| is below the threshold", result.ContentScore)
	}
}

func TestAnalyze_SentimentPenaltyProportional(t *testing.T) {
	tests := []struct {
		compound float64
		want     float64
	}{
		{0.5, 90},   // 100 - 0.5*20
		{-0.5, 90},  // magnitude matters, not direction
		{0.75, 85},  // 100 - 0.75*20
		{1.0, 80},   // maximum sentiment penalty
		{-1.0, 80},
	}

	for _, tt := range tests {
		svc := newTestService(t, tt.compound)
		result, err := svc.Analyze(context.Background(), domain.AnalysisInput{Text: neutralText})
		if err != nil {
			t.Fatalf("Analyze returned error: %v", err)
		}
		if result.ContentScore != tt.want {
			t.Errorf("ContentScore = %v for compound %v, want %v", result.ContentScore, tt.compound, tt.want)
		}
	}
}

func TestAnalyze_NonFiniteSentimentTreatedAsNeutral(t *testing.T) {
	for _, c := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		svc := newTestService(t, c)

		result, err := svc.Analyze(context.Background(), domain.AnalysisInput{Text: neutralText})

		if err != nil {
			t.Fatalf("Analyze returned error: %v", err)
		}
		if result.Signals.SentimentScore != 0 {
			t.Errorf("SentimentScore = %v for non-finite compound, want 0", result.Signals.SentimentScore)
		}
		if result.ContentScore != 100 {
			t.Errorf("ContentScore = %v for non-finite compound, want 100", result.ContentScore)
		}
	}
}

func TestAnalyze_BiasLabelLeft(t *testing.T) {
	svc := newTestService(t, 0)
	text := neutralText + " The grassroots campaign focused on inequality and social justice."

	result, err := svc.Analyze(context.Background(), domain.AnalysisInput{Text: text})

	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if result.Signals.BiasLabel != domain.BiasLeft {
		t.Errorf("BiasLabel = %s, want left", result.Signals.BiasLabel)
	}
	if result.Signals.BiasStrength <= 0 || result.Signals.BiasStrength > 1 {
		t.Errorf("BiasStrength = %v, want in (0,1]", result.Signals.BiasStrength)
	}
	if len(result.Signals.LeftTerms) == 0 {
		t.Error("LeftTerms should list the matched keywords")
	}
}

func TestAnalyze_BiasLabelRight(t *testing.T) {
	svc := newTestService(t, 0)
	text := neutralText + " Speakers stressed fiscal responsibility, limited government and family values."

	result, err := svc.Analyze(context.Background(), domain.AnalysisInput{Text: text})

	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if result.Signals.BiasLabel != domain.BiasRight {
		t.Errorf("BiasLabel = %s, want right", result.Signals.BiasLabel)
	}
}

func TestAnalyze_BiasTieIsNeutral(t *testing.T) {
	svc := newTestService(t, 0)
	// One left keyword and one right keyword
	text := neutralText + " A grassroots group debated a conservative councillor."

	result, err := svc.Analyze(context.Background(), domain.AnalysisInput{Text: text})

	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if result.Signals.BiasLabel != domain.BiasNeutral {
		t.Errorf("BiasLabel = %s, want neutral on a tie", result.Signals.BiasLabel)
	}
}

func TestAnalyze_ZeroKeywordsIsNeutral(t *testing.T) {
	svc := newTestService(t, 0)

	result, err := svc.Analyze(context.Background(), domain.AnalysisInput{Text: neutralText})

	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if result.Signals.BiasLabel != domain.BiasNeutral {
		t.Errorf("BiasLabel = %s, want neutral with no keyword hits", result.Signals.BiasLabel)
	}
	if result.Signals.BiasStrength != 0 {
		t.Errorf("BiasStrength = %v, want 0 with no keyword hits", result.Signals.BiasStrength)
	}
}

func TestAnalyze_BiasDoesNotAffectContentScore(t *testing.T) {
	svc := newTestService(t, 0)
	// Bias keywords only, no suspicious phrases or clickbait
	text := neutralText + " Residents debated gun control, reproductive rights and medicare for all."

	result, err := svc.Analyze(context.Background(), domain.AnalysisInput{Text: text})

	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if result.Signals.BiasLabel != domain.BiasLeft {
		t.Fatalf("BiasLabel = %s, want left", result.Signals.BiasLabel)
	}
	if result.ContentScore != 100 {
		t.Errorf("ContentScore = %v, bias must not penalize content", result.ContentScore)
	}
}

func TestAnalyze_ClickbaitRegexPatterns(t *testing.T) {
	svc := newTestService(t, 0)
	text := neutralText + " You won't believe what happens next in this story about 10 things nobody mentioned."

	result, err := svc.Analyze(context.Background(), domain.AnalysisInput{Text: text})

	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	// "you won't believe", "what happens next" and the numbered-listicle
	// pattern all match
	if result.Signals.ClickbaitHits < 3 {
		t.Errorf("ClickbaitHits = %d, want at least 3 regex matches", result.Signals.ClickbaitHits)
	}
}

func TestAnalyze_TitleContributesToSignals(t *testing.T) {
	svc := newTestService(t, 0)

	withTitle, err := svc.Analyze(context.Background(), domain.AnalysisInput{
		Title: "Bombshell report leaked",
		Text:  neutralText,
	})
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	withoutTitle, err := svc.Analyze(context.Background(), domain.AnalysisInput{Text: neutralText})
	if err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}

	if withTitle.Signals.ClickbaitHits <= withoutTitle.Signals.ClickbaitHits {
		t.Error("suspicious phrases in the title should count toward clickbait hits")
	}
}

func TestObjectivityScore(t *testing.T) {
	if got := objectivityScore(0, 0, 0); got != 0.5 {
		t.Errorf("objectivityScore with no words = %v, want 0.5", got)
	}
	if got := objectivityScore(5, 0, 100); got != 1 {
		t.Errorf("objectivityScore = %v, want saturation at 1", got)
	}
	if got := objectivityScore(0, 50, 100); got != 0 {
		t.Errorf("objectivityScore = %v, want floor at 0", got)
	}

	measured := objectivityScore(3, 0, 300)
	charged := objectivityScore(3, 6, 300)
	if charged >= measured {
		t.Errorf("polarizing language should lower objectivity: %v >= %v", charged, measured)
	}
}

func TestSanitizeCompound(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.3, 0.3},
		{1.5, 1},
		{-2, -1},
		{math.NaN(), 0},
		{math.Inf(1), 0},
	}

	for _, tt := range tests {
		if got := sanitizeCompound(tt.in); got != tt.want {
			t.Errorf("sanitizeCompound(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
