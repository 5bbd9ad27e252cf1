package summarize

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// defaultGeminiModel is the model the web form has always used.
const defaultGeminiModel = "gemini-2.5-flash"

// contentGenerator is the subset of *genai.Models used here.
// It allows injecting mocks in tests.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Compile-time interface compliance check.
var _ Generator = (*GeminiGenerator)(nil)

// GeminiGenerator generates summaries with the Gemini Developer API.
type GeminiGenerator struct {
	client contentGenerator
	model  string
}

// NewGeminiGenerator creates a Gemini generator. The key is passed in
// explicitly; nothing is read from the environment here.
func NewGeminiGenerator(ctx context.Context, apiKey string, opts ...Option) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, ErrEmptyAPIKey
	}
	s := newSettings(defaultGeminiModel, "", opts)

	cc := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: s.httpClient,
	}
	if s.baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: s.baseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiGenerator{client: client.Models, model: s.model}, nil
}

// Model implements Generator.
func (g *GeminiGenerator) Model() string {
	return g.model
}

// Generate implements Generator.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", classifyGeminiError(err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%s: %w", g.model, ErrEmptyResponse)
	}
	return text, nil
}

// classifyGeminiError maps genai errors to apierr sentinels.
func classifyGeminiError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return classifyGeminiAPIError(apiErr, err)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return classifyGeminiAPIError(*apiErrPtr, err)
	}

	return classifyTransport(err)
}

func classifyGeminiAPIError(apiErr genai.APIError, orig error) error {
	msg := apiErr.Message
	if msg == "" {
		msg = orig.Error()
	}
	if classified := classifyStatus(apiErr.Code, msg); classified != nil {
		return classified
	}
	return orig
}
