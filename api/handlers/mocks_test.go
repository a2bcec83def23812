package handlers

import (
	"context"
	"errors"
	"sync"
	"time"

	"credcheck-api/core/domain"
	"credcheck-api/core/interfaces"
)

// mockAnalysisService is a mock implementation of the analysis service
type mockAnalysisService struct {
	mu          sync.Mutex
	analyzeFunc func(ctx context.Context, input domain.AnalysisInput) (*domain.AnalysisResult, error)
	calls       []domain.AnalysisInput
}

func (m *mockAnalysisService) Analyze(ctx context.Context, input domain.AnalysisInput) (*domain.AnalysisResult, error) {
	m.mu.Lock()
	m.calls = append(m.calls, input)
	m.mu.Unlock()
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, input)
	}
	return &domain.AnalysisResult{
		FinalScore:     70,
		Tier:           domain.TierHigh,
		SourceScore:    50,
		ContentScore:   100,
		DomainCategory: domain.CategoryUnknown,
		Signals: domain.SignalSet{
			BiasLabel:   domain.BiasNeutral,
			Objectivity: 1,
		},
	}, nil
}

// mockExtractService is a mock implementation of the extract service
type mockExtractService struct {
	mu          sync.Mutex
	extractFunc func(ctx context.Context, url string) (*domain.Article, error)
	calls       int
}

func (m *mockExtractService) ExtractArticle(ctx context.Context, url string) (*domain.Article, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.extractFunc != nil {
		return m.extractFunc(ctx, url)
	}
	return &domain.Article{
		URL:    url,
		Domain: "example.com",
		Title:  "Example Article",
		Text:   "Some extracted article text for testing.",
	}, nil
}

// mockDiscoverService is a mock implementation of the discover service
type mockDiscoverService struct {
	discoverFunc func(ctx context.Context, siteURL string, limit int) ([]string, error)
	lastLimit    int
}

func (m *mockDiscoverService) DiscoverArticleLinks(ctx context.Context, siteURL string, limit int) ([]string, error) {
	m.lastLimit = limit
	if m.discoverFunc != nil {
		return m.discoverFunc(ctx, siteURL, limit)
	}
	return nil, nil
}

var errCacheMiss = errors.New("cache miss")

// mockCache is a map-backed cache for handler tests
type mockCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newMockCache() *mockCache {
	return &mockCache{items: make(map[string][]byte)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.items[key]; ok {
		return v, nil
	}
	return nil, errCacheMiss
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// mockLogger is a no-op logger for handler tests
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

func testDeps(cache interfaces.Cache) interfaces.Dependencies {
	return interfaces.Dependencies{
		Cache:  cache,
		Logger: &mockLogger{},
	}
}
