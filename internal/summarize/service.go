package summarize

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/alnah/notegpt/internal/apierr"
	"github.com/alnah/notegpt/internal/lang"
	"github.com/alnah/notegpt/internal/prompt"
	"github.com/alnah/notegpt/internal/youtube"
)

// promptExcerptLen bounds the prompt text written to debug logs.
const promptExcerptLen = 120

// Request is one summary request as received from a caller.
// Both fields are raw; Service validates them.
type Request struct {
	URL  string
	Lang string
}

// Result is a finished summary.
type Result struct {
	VideoID youtube.VideoID
	Summary string
	Model   string
}

// Transcript is a fetched caption transcript.
type Transcript struct {
	VideoID  youtube.VideoID
	Language lang.Language
	Segments []youtube.Segment
}

// Text returns the assembled transcript.
func (t Transcript) Text() string {
	return youtube.Assemble(t.Segments)
}

// Service runs the fetch-then-generate pipeline. It holds no per-request
// state and is safe for concurrent use.
type Service struct {
	fetcher   youtube.Fetcher
	generator Generator
	logger    *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger used for debug traces.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates a Service. generator may be nil for a Service that
// only fetches transcripts.
func NewService(fetcher youtube.Fetcher, generator Generator, opts ...ServiceOption) *Service {
	s := &Service{
		fetcher:   fetcher,
		generator: generator,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Transcript validates rawURL and rawLang and fetches the caption transcript.
// Every error is an *apierr.Error: KindInput for a bad URL or language,
// KindUpstream for a fetch failure.
func (s *Service) Transcript(ctx context.Context, rawURL, rawLang string) (Transcript, error) {
	id, err := youtube.ParseVideoID(rawURL)
	if err != nil {
		return Transcript{}, apierr.Input(youtube.ErrInvalidURL.Error(), err)
	}

	outputLang, err := lang.Parse(rawLang)
	if err != nil {
		return Transcript{}, apierr.Input(err.Error(), err)
	}

	start := time.Now()
	segs, err := s.fetcher.Fetch(ctx, id, outputLang)
	if err != nil {
		return Transcript{}, apierr.Upstream(err)
	}
	s.logger.DebugContext(ctx, "transcript fetched",
		"video_id", id.String(),
		"segments", len(segs),
		"elapsed", time.Since(start))

	return Transcript{VideoID: id, Language: outputLang, Segments: segs}, nil
}

// Summarize fetches the transcript for req.URL and asks the generator
// for a structured summary. One attempt is made at each step.
func (s *Service) Summarize(ctx context.Context, req Request) (Result, error) {
	if s.generator == nil {
		return Result{}, apierr.Internal(errors.New("no generator configured"))
	}

	tr, err := s.Transcript(ctx, req.URL, req.Lang)
	if err != nil {
		return Result{}, err
	}

	p := prompt.Summary(tr.Text(), tr.Language)
	s.logger.DebugContext(ctx, "generating summary",
		"video_id", tr.VideoID.String(),
		"model", s.generator.Model(),
		"prompt", prompt.Excerpt(p, promptExcerptLen))

	start := time.Now()
	summary, err := s.generator.Generate(ctx, p)
	if err != nil {
		return Result{}, apierr.Upstream(err)
	}
	s.logger.DebugContext(ctx, "summary generated",
		"video_id", tr.VideoID.String(),
		"chars", len(summary),
		"elapsed", time.Since(start))

	return Result{
		VideoID: tr.VideoID,
		Summary: summary,
		Model:   s.generator.Model(),
	}, nil
}
