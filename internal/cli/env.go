package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alnah/notegpt/internal/config"
	"github.com/alnah/notegpt/internal/interrupt"
	"github.com/alnah/notegpt/internal/summarize"
	"github.com/alnah/notegpt/internal/youtube"
)

// Env holds injectable dependencies for CLI commands.
// This is the central injection point for testing CLI commands in isolation.
//
// All fields have sensible defaults via DefaultEnv(). Tests can override
// specific fields using the With* options or by creating a custom Env.
//
// Env must not be nil when passed to command functions. Use DefaultEnv()
// or NewEnv() to create a valid instance.
type Env struct {
	// I/O and environment
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string
	Now    func() time.Time

	// Factories for domain objects
	ConfigLoader     ConfigLoader
	FetcherFactory   FetcherFactory
	GeneratorFactory GeneratorFactory

	// Interrupts wraps ctx for long-running commands. The returned stop
	// function releases signal handling.
	Interrupts func(ctx context.Context, notice string) (context.Context, func())
}

// ConfigLoader loads and provides access to configuration.
type ConfigLoader interface {
	Load() (config.Config, error)
}

// FetcherFactory creates transcript fetchers.
type FetcherFactory interface {
	// NewFetcher creates a fetcher whose outbound requests time out after
	// timeout. Zero keeps the fetcher's default.
	NewFetcher(timeout time.Duration) youtube.Fetcher
}

// GeneratorFactory creates summary generators.
type GeneratorFactory interface {
	// NewGenerator creates a generator for provider p. An empty model
	// selects the provider's default.
	NewGenerator(ctx context.Context, p Provider, apiKey, model string) (summarize.Generator, error)
}

// EnvOption configures an Env.
type EnvOption func(*Env)

// WithStdout sets the stdout writer.
func WithStdout(w io.Writer) EnvOption {
	return func(e *Env) {
		e.Stdout = w
	}
}

// WithStderr sets the stderr writer.
func WithStderr(w io.Writer) EnvOption {
	return func(e *Env) {
		e.Stderr = w
	}
}

// WithGetenv sets the environment variable getter.
func WithGetenv(fn func(string) string) EnvOption {
	return func(e *Env) {
		e.Getenv = fn
	}
}

// WithNow sets the time provider.
func WithNow(fn func() time.Time) EnvOption {
	return func(e *Env) {
		e.Now = fn
	}
}

// WithConfigLoader sets the config loader.
func WithConfigLoader(l ConfigLoader) EnvOption {
	return func(e *Env) {
		e.ConfigLoader = l
	}
}

// WithFetcherFactory sets the fetcher factory.
func WithFetcherFactory(f FetcherFactory) EnvOption {
	return func(e *Env) {
		e.FetcherFactory = f
	}
}

// WithGeneratorFactory sets the generator factory.
func WithGeneratorFactory(f GeneratorFactory) EnvOption {
	return func(e *Env) {
		e.GeneratorFactory = f
	}
}

// WithInterrupts sets the signal wrapper used by serve.
func WithInterrupts(fn func(ctx context.Context, notice string) (context.Context, func())) EnvOption {
	return func(e *Env) {
		e.Interrupts = fn
	}
}

// DefaultEnv returns an Env with production defaults.
func DefaultEnv() *Env {
	return &Env{
		Stdout:           os.Stdout,
		Stderr:           os.Stderr,
		Getenv:           os.Getenv,
		Now:              time.Now,
		ConfigLoader:     &defaultConfigLoader{},
		FetcherFactory:   &defaultFetcherFactory{},
		GeneratorFactory: &defaultGeneratorFactory{},
		Interrupts:       defaultInterrupts,
	}
}

// NewEnv creates an Env with the given options applied to defaults.
func NewEnv(opts ...EnvOption) *Env {
	env := DefaultEnv()
	for _, opt := range opts {
		opt(env)
	}
	return env
}

// newLogger returns the text logger used by serve.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// ---------------------------------------------------------------------------
// Default implementations - delegate to real packages
// ---------------------------------------------------------------------------

// defaultConfigLoader implements ConfigLoader using the config package.
type defaultConfigLoader struct{}

func (defaultConfigLoader) Load() (config.Config, error) {
	return config.Load()
}

// defaultFetcherFactory implements FetcherFactory with the watch-page fetcher.
type defaultFetcherFactory struct{}

func (defaultFetcherFactory) NewFetcher(timeout time.Duration) youtube.Fetcher {
	return youtube.NewWatchPageFetcher(youtube.WithTimeout(timeout))
}

// defaultGeneratorFactory implements GeneratorFactory using the summarize
// package: Gemini through genai, OpenAI and DeepSeek through go-openai.
type defaultGeneratorFactory struct{}

func (defaultGeneratorFactory) NewGenerator(ctx context.Context, p Provider, apiKey, model string) (summarize.Generator, error) {
	opts := []summarize.Option{summarize.WithModel(model)}

	switch p.OrDefault() {
	case OpenAIProvider:
		g, err := summarize.NewOpenAIGenerator(apiKey, opts...)
		if err != nil {
			return nil, err
		}
		return g, nil
	case DeepSeekProvider:
		g, err := summarize.NewDeepSeekGenerator(apiKey, opts...)
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		g, err := summarize.NewGeminiGenerator(ctx, apiKey, opts...)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
}

// defaultInterrupts cancels on the first SIGINT/SIGTERM and exits 130 on
// a second one within two seconds.
func defaultInterrupts(ctx context.Context, notice string) (context.Context, func()) {
	h, ctx := interrupt.NewHandler(ctx, notice)
	return ctx, h.Stop
}

// Compile-time interface verification.
var (
	_ ConfigLoader     = (*defaultConfigLoader)(nil)
	_ FetcherFactory   = (*defaultFetcherFactory)(nil)
	_ GeneratorFactory = (*defaultGeneratorFactory)(nil)
)
