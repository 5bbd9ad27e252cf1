package server

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/alnah/notegpt/internal/apierr"
	"github.com/alnah/notegpt/internal/summarize"
	"github.com/alnah/notegpt/internal/youtube"
)

// fallbackMessage is shown when a failure carries no text of its own.
const fallbackMessage = "Failed to process video"

//go:embed web/index.html
var indexHTML []byte

type transcriptRequest struct {
	URL  string `json:"url"`
	Lang string `json:"lang,omitempty"`
}

type summaryResponse struct {
	Summary string `json:"summary"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write(indexHTML)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "ok"})
}

// handleTranscript decodes {"url", "lang"}, runs the summarizer once and
// maps its error Kind to the response status.
func (s *Server) handleTranscript(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	var req transcriptRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&req); err != nil {
		s.fail(w, r, req, apierr.Input(fmt.Sprintf("Invalid request body: %v", err), err))
		return
	}

	res, err := s.summarizer.Summarize(ctx, summarize.Request{URL: req.URL, Lang: req.Lang})
	if err != nil {
		s.fail(w, r, req, err)
		return
	}

	s.logger.InfoContext(ctx, "summary generated",
		slog.String("request_id", middleware.GetReqID(ctx)),
		slog.String("video_id", res.VideoID.String()),
		slog.String("model", res.Model),
		slog.Duration("elapsed", time.Since(start)))

	writeJSON(w, http.StatusOK, summaryResponse{Summary: res.Summary})
}

// fail logs err once and writes the JSON error response.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, req transcriptRequest, err error) {
	kind := apierr.KindOf(err)

	attrs := []any{
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("kind", kind.String()),
		slog.String("url", req.URL),
		slog.Any("error", err),
	}
	if id, parseErr := youtube.ParseVideoID(req.URL); parseErr == nil {
		attrs = append(attrs, slog.String("video_id", id.String()))
	}
	s.logger.ErrorContext(r.Context(), "summary request failed", attrs...)

	writeError(w, kind.HTTPStatus(), apierr.PublicMessage(err, fallbackMessage))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
