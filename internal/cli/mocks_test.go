package cli

import (
	"context"
	"sync"
	"time"

	"github.com/alnah/notegpt/internal/config"
	"github.com/alnah/notegpt/internal/lang"
	"github.com/alnah/notegpt/internal/summarize"
	"github.com/alnah/notegpt/internal/youtube"
)

// ---------------------------------------------------------------------------
// Mock ConfigLoader
// ---------------------------------------------------------------------------

type mockConfigLoader struct {
	LoadFunc func() (config.Config, error)

	mu        sync.Mutex
	loadCalls int
}

func (m *mockConfigLoader) Load() (config.Config, error) {
	m.mu.Lock()
	m.loadCalls++
	m.mu.Unlock()

	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return config.Config{}, nil
}

func (m *mockConfigLoader) LoadCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loadCalls
}

// ---------------------------------------------------------------------------
// Mock FetcherFactory + Fetcher
// ---------------------------------------------------------------------------

type fetchCall struct {
	ID        youtube.VideoID
	Preferred lang.Language
}

type mockFetcher struct {
	FetchFunc func(ctx context.Context, id youtube.VideoID, preferred lang.Language) ([]youtube.Segment, error)

	mu    sync.Mutex
	calls []fetchCall
}

func (m *mockFetcher) Fetch(ctx context.Context, id youtube.VideoID, preferred lang.Language) ([]youtube.Segment, error) {
	m.mu.Lock()
	m.calls = append(m.calls, fetchCall{ID: id, Preferred: preferred})
	m.mu.Unlock()

	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, id, preferred)
	}
	return []youtube.Segment{
		{Text: "never gonna", Start: 0, Duration: 1.5},
		{Text: "give you up", Start: 65.2, Duration: 2},
	}, nil
}

func (m *mockFetcher) Calls() []fetchCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]fetchCall(nil), m.calls...)
}

type mockFetcherFactory struct {
	fetcher *mockFetcher

	mu       sync.Mutex
	timeouts []time.Duration
}

func (m *mockFetcherFactory) NewFetcher(timeout time.Duration) youtube.Fetcher {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timeouts = append(m.timeouts, timeout)
	if m.fetcher == nil {
		m.fetcher = &mockFetcher{}
	}
	return m.fetcher
}

func (m *mockFetcherFactory) Timeouts() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.timeouts...)
}

// ---------------------------------------------------------------------------
// Mock GeneratorFactory + Generator
// ---------------------------------------------------------------------------

type mockGenerator struct {
	GenerateFunc func(ctx context.Context, prompt string) (string, error)
	model        string

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
	return "## Main topic\nA song.", nil
}

func (m *mockGenerator) Model() string {
	if m.model == "" {
		return "mock-model"
	}
	return m.model
}

func (m *mockGenerator) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}

type generatorCall struct {
	Provider Provider
	APIKey   string
	Model    string
}

type mockGeneratorFactory struct {
	NewGeneratorFunc func(ctx context.Context, p Provider, apiKey, model string) (summarize.Generator, error)
	generator        *mockGenerator

	mu    sync.Mutex
	calls []generatorCall
}

func (m *mockGeneratorFactory) NewGenerator(ctx context.Context, p Provider, apiKey, model string) (summarize.Generator, error) {
	m.mu.Lock()
	m.calls = append(m.calls, generatorCall{Provider: p, APIKey: apiKey, Model: model})
	if m.generator == nil {
		m.generator = &mockGenerator{}
	}
	gen := m.generator
	m.mu.Unlock()

	if m.NewGeneratorFunc != nil {
		return m.NewGeneratorFunc(ctx, p, apiKey, model)
	}
	return gen, nil
}

func (m *mockGeneratorFactory) Calls() []generatorCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]generatorCall(nil), m.calls...)
}

// Compile-time interface verification.
var (
	_ ConfigLoader        = (*mockConfigLoader)(nil)
	_ FetcherFactory      = (*mockFetcherFactory)(nil)
	_ GeneratorFactory    = (*mockGeneratorFactory)(nil)
	_ youtube.Fetcher     = (*mockFetcher)(nil)
	_ summarize.Generator = (*mockGenerator)(nil)
)
