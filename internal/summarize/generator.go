// Package summarize turns a YouTube URL into an AI-written summary of the
// video's transcript.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/alnah/notegpt/internal/apierr"
)

// Generator produces a completion for a single prompt.
type Generator interface {
	// Generate sends prompt in one request and returns the text answer.
	Generate(ctx context.Context, prompt string) (string, error)
	// Model names the model answering, for logs and results.
	Model() string
}

// Default timeout for one generation request. Summaries of long videos
// can take a while.
const defaultGenerateTimeout = 2 * time.Minute

type settings struct {
	model      string
	baseURL    string
	httpClient *http.Client
}

// Option configures a provider-backed Generator.
type Option func(*settings)

// WithModel overrides the provider's default model.
func WithModel(model string) Option {
	return func(s *settings) {
		if model != "" {
			s.model = model
		}
	}
}

// WithBaseURL sets a custom API base URL (for testing or proxies).
func WithBaseURL(url string) Option {
	return func(s *settings) {
		s.baseURL = strings.TrimSuffix(url, "/")
	}
}

// WithHTTPClient sets a custom HTTP client (for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(s *settings) {
		s.httpClient = c
	}
}

func newSettings(model, baseURL string, opts []Option) settings {
	s := settings{model: model, baseURL: baseURL}
	for _, opt := range opts {
		opt(&s)
	}
	if s.httpClient == nil {
		s.httpClient = &http.Client{Timeout: defaultGenerateTimeout}
	}
	return s
}

// classifyStatus maps a provider HTTP status to an apierr sentinel,
// keeping the provider's message first.
// Returns nil when the status carries no useful classification.
func classifyStatus(code int, msg string) error {
	switch code {
	case http.StatusTooManyRequests:
		// Quota exhaustion needs user action; a rate limit only needs time.
		lower := strings.ToLower(msg)
		if strings.Contains(lower, "quota") || strings.Contains(lower, "billing") {
			return fmt.Errorf("%s: %w", msg, apierr.ErrQuotaExceeded)
		}
		return fmt.Errorf("%s: %w", msg, apierr.ErrRateLimit)
	case http.StatusPaymentRequired:
		return fmt.Errorf("%s: %w", msg, apierr.ErrQuotaExceeded)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%s: %w", msg, apierr.ErrAuthFailed)
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return fmt.Errorf("%s: %w", msg, apierr.ErrTimeout)
	case http.StatusBadRequest, http.StatusNotFound:
		return fmt.Errorf("%s: %w", msg, apierr.ErrBadRequest)
	}
	return nil
}

// classifyTransport handles failures that never produced a status.
func classifyTransport(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("generation request timed out: %w", apierr.ErrTimeout)
	}
	return err
}
