package summarize_test

import (
	"context"
	"sync"

	"github.com/alnah/notegpt/internal/lang"
	"github.com/alnah/notegpt/internal/youtube"
)

// ---------------------------------------------------------------------------
// Mock Fetcher
// ---------------------------------------------------------------------------

type fetchCall struct {
	ID   youtube.VideoID
	Lang lang.Language
}

type mockFetcher struct {
	FetchFunc func(ctx context.Context, id youtube.VideoID, preferred lang.Language) ([]youtube.Segment, error)

	mu    sync.Mutex
	calls []fetchCall
}

func (m *mockFetcher) Fetch(ctx context.Context, id youtube.VideoID, preferred lang.Language) ([]youtube.Segment, error) {
	m.mu.Lock()
	m.calls = append(m.calls, fetchCall{ID: id, Lang: preferred})
	m.mu.Unlock()

	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, id, preferred)
	}
	return []youtube.Segment{{Text: "hello"}, {Text: "world"}}, nil
}

func (m *mockFetcher) Calls() []fetchCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]fetchCall(nil), m.calls...)
}

// ---------------------------------------------------------------------------
// Mock Generator
// ---------------------------------------------------------------------------

type mockGenerator struct {
	GenerateFunc func(ctx context.Context, prompt string) (string, error)
	ModelName    string

	mu      sync.Mutex
	prompts []string
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt)
	}
	return "a summary", nil
}

func (m *mockGenerator) Model() string {
	if m.ModelName == "" {
		return "mock-model"
	}
	return m.ModelName
}

func (m *mockGenerator) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}
