package cli

import (
	"errors"
	"fmt"
	"strings"
)

// Provider names accepted by --provider and the provider config key.
const (
	ProviderGemini   = "gemini"
	ProviderOpenAI   = "openai"
	ProviderDeepSeek = "deepseek"
)

// API key environment variables, one per provider.
const (
	EnvGeminiAPIKey   = "GEMINI_API_KEY"
	EnvOpenAIAPIKey   = "OPENAI_API_KEY"
	EnvDeepSeekAPIKey = "DEEPSEEK_API_KEY"
)

// Provider represents a validated generative-AI provider.
// Zero value is unset; OrDefault turns it into GeminiProvider.
// Use ParseProvider to create from user input, or the pre-parsed constants.
type Provider struct {
	name string
}

// Compile-time interface compliance check.
var _ fmt.Stringer = Provider{}

// ErrInvalidProvider indicates an invalid provider name was specified.
var ErrInvalidProvider = errors.New("invalid provider")

// Pre-parsed provider constants for use in code.
var (
	GeminiProvider   = Provider{name: ProviderGemini}
	OpenAIProvider   = Provider{name: ProviderOpenAI}
	DeepSeekProvider = Provider{name: ProviderDeepSeek}
)

// providerKeyEnv maps each provider to the variable holding its API key.
var providerKeyEnv = map[string]string{
	ProviderGemini:   EnvGeminiAPIKey,
	ProviderOpenAI:   EnvOpenAIAPIKey,
	ProviderDeepSeek: EnvDeepSeekAPIKey,
}

// ParseProvider validates a provider name. Matching is case-insensitive.
// Empty input yields the zero Provider with no error, so callers can layer
// flag, config and default with OrDefault.
func ParseProvider(s string) (Provider, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Provider{}, nil
	}
	if _, ok := providerKeyEnv[s]; !ok {
		return Provider{}, fmt.Errorf("unknown provider %q (use 'gemini', 'openai' or 'deepseek'): %w", s, ErrInvalidProvider)
	}
	return Provider{name: s}, nil
}

// MustParseProvider parses a provider name, panicking if invalid.
// Use only for compile-time constants and tests.
func MustParseProvider(s string) Provider {
	p, err := ParseProvider(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the provider name, or "" for the zero value.
func (p Provider) String() string {
	return p.name
}

// IsZero reports whether no provider was chosen.
func (p Provider) IsZero() bool {
	return p.name == ""
}

// IsGemini returns true if this provider is Gemini.
func (p Provider) IsGemini() bool {
	return p.name == ProviderGemini
}

// IsOpenAI returns true if this provider is OpenAI.
func (p Provider) IsOpenAI() bool {
	return p.name == ProviderOpenAI
}

// IsDeepSeek returns true if this provider is DeepSeek.
func (p Provider) IsDeepSeek() bool {
	return p.name == ProviderDeepSeek
}

// APIKeyEnv returns the environment variable holding the provider's API key.
// The zero Provider reports Gemini's variable.
func (p Provider) APIKeyEnv() string {
	return providerKeyEnv[p.OrDefault().name]
}

// OrDefault returns the provider, or GeminiProvider if zero.
func (p Provider) OrDefault() Provider {
	if p.IsZero() {
		return GeminiProvider
	}
	return p
}
