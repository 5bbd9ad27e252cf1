package summarize

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Provider defaults for OpenAI-compatible chat completion APIs.
const (
	defaultOpenAIModel   = "gpt-4o-mini"
	defaultOpenAIBaseURL = "https://api.openai.com/v1"

	defaultDeepSeekModel   = "deepseek-chat"
	defaultDeepSeekBaseURL = "https://api.deepseek.com"
)

// chatCompleter is the subset of *openai.Client used here.
// It allows injecting mocks in tests.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Compile-time interface compliance check.
var _ Generator = (*OpenAIGenerator)(nil)

// OpenAIGenerator generates summaries through an OpenAI-compatible
// chat completion endpoint. DeepSeek speaks the same protocol.
type OpenAIGenerator struct {
	client chatCompleter
	model  string
}

// NewOpenAIGenerator creates a generator for api.openai.com.
func NewOpenAIGenerator(apiKey string, opts ...Option) (*OpenAIGenerator, error) {
	return newOpenAICompatible(apiKey, defaultOpenAIModel, defaultOpenAIBaseURL, opts)
}

// NewDeepSeekGenerator creates a generator for api.deepseek.com.
func NewDeepSeekGenerator(apiKey string, opts ...Option) (*OpenAIGenerator, error) {
	return newOpenAICompatible(apiKey, defaultDeepSeekModel, defaultDeepSeekBaseURL, opts)
}

func newOpenAICompatible(apiKey, model, baseURL string, opts []Option) (*OpenAIGenerator, error) {
	if apiKey == "" {
		return nil, ErrEmptyAPIKey
	}
	s := newSettings(model, baseURL, opts)

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = s.baseURL
	cfg.HTTPClient = s.httpClient

	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(cfg),
		model:  s.model,
	}, nil
}

// Model implements Generator.
func (g *OpenAIGenerator) Model() string {
	return g.model
}

// Generate implements Generator. The prompt is sent as a single user message.
func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", classifyOpenAIError(err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%s: %w", g.model, ErrEmptyResponse)
	}
	return resp.Choices[0].Message.Content, nil
}

// classifyOpenAIError maps go-openai errors to apierr sentinels.
func classifyOpenAIError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if classified := classifyStatus(apiErr.HTTPStatusCode, apiErr.Message); classified != nil {
			return classified
		}
		return err
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if classified := classifyStatus(reqErr.HTTPStatusCode, reqErr.Error()); classified != nil {
			return classified
		}
		return err
	}

	return classifyTransport(err)
}
