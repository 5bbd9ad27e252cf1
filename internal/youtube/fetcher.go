package youtube

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/alnah/notegpt/internal/apierr"
	"github.com/alnah/notegpt/internal/lang"
)

// Fetcher retrieves the caption transcript of a video.
type Fetcher interface {
	// Fetch returns the segments of the best caption track for preferred.
	// A zero preferred language means English first.
	Fetch(ctx context.Context, id VideoID, preferred lang.Language) ([]Segment, error)
}

const (
	defaultBaseURL   = "https://www.youtube.com"
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

	// Default timeout for each outbound request.
	defaultFetchTimeout = 30 * time.Second

	// Watch pages run to a few MB; caption XML is far smaller.
	maxWatchPageSize = 8 << 20
	maxCaptionSize   = 2 << 20

	playerResponseMarker = "ytInitialPlayerResponse"
)

// playerResponseAssign matches an object assignment to the player response.
// Pages also carry "ytInitialPlayerResponse = null" guards, which it skips.
var playerResponseAssign = regexp.MustCompile(playerResponseMarker + `\s*=\s*\{`)

// httpDoer executes HTTP requests. Satisfied by *http.Client.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Compile-time interface compliance check.
var _ Fetcher = (*WatchPageFetcher)(nil)

// WatchPageFetcher reads the player response embedded in the watch page
// and downloads the chosen caption track as timedtext XML.
type WatchPageFetcher struct {
	baseURL    string
	userAgent  string
	timeout    time.Duration
	httpClient httpDoer
}

// FetcherOption configures a WatchPageFetcher.
type FetcherOption func(*WatchPageFetcher)

// WithBaseURL sets a custom base URL (for testing or proxies).
func WithBaseURL(url string) FetcherOption {
	return func(f *WatchPageFetcher) {
		f.baseURL = strings.TrimSuffix(url, "/")
	}
}

// WithHTTPClient sets a custom HTTP client (for testing).
func WithHTTPClient(c httpDoer) FetcherOption {
	return func(f *WatchPageFetcher) {
		f.httpClient = c
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) FetcherOption {
	return func(f *WatchPageFetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithUserAgent overrides the browser User-Agent sent to YouTube.
func WithUserAgent(ua string) FetcherOption {
	return func(f *WatchPageFetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// NewWatchPageFetcher creates a fetcher for www.youtube.com.
func NewWatchPageFetcher(opts ...FetcherOption) *WatchPageFetcher {
	f := &WatchPageFetcher{
		baseURL:   defaultBaseURL,
		userAgent: defaultUserAgent,
		timeout:   defaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.httpClient == nil {
		f.httpClient = &http.Client{Timeout: f.timeout}
	}
	return f
}

// Fetch implements Fetcher. It makes one attempt; failures are classified
// into apierr sentinels where the status code allows.
func (f *WatchPageFetcher) Fetch(ctx context.Context, id VideoID, preferred lang.Language) ([]Segment, error) {
	if id.IsZero() {
		return nil, fmt.Errorf("empty video id: %w", ErrInvalidURL)
	}

	page, err := f.get(ctx, f.baseURL+"/watch?v="+id.String(), maxWatchPageSize)
	if err != nil {
		return nil, fmt.Errorf("watch page: %w", err)
	}

	player, err := parsePlayerResponse(page)
	if err != nil {
		return nil, err
	}

	tracks := player.captionTracks()
	if len(tracks) == 0 {
		if reason := player.unplayableReason(); reason != "" {
			return nil, fmt.Errorf("%s (%s): %w", reason, id, ErrVideoUnavailable)
		}
		return nil, fmt.Errorf("video %s: %w", id, ErrTranscriptsDisabled)
	}

	track := pickTrack(tracks, preferred)
	body, err := f.get(ctx, track.BaseURL, maxCaptionSize)
	if err != nil {
		return nil, fmt.Errorf("caption track %s: %w", track.LanguageCode, err)
	}

	segs, err := parseTimedText(body)
	if err != nil {
		return nil, err
	}
	if len(segs) == 0 {
		return nil, fmt.Errorf("video %s: %w", id, ErrNoTranscript)
	}
	return segs, nil
}

// get performs a GET and returns at most limit bytes of the body.
func (f *WatchPageFetcher) get(ctx context.Context, url string, limit int64) (_ []byte, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("request timed out: %w", apierr.ErrTimeout)
		}
		return nil, err
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close response body: %w", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, classifyStatus(resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}

// classifyStatus maps a non-200 YouTube status to an apierr sentinel.
func classifyStatus(code int) error {
	msg := fmt.Sprintf("YouTube returned HTTP %d", code)
	switch code {
	case http.StatusTooManyRequests:
		return fmt.Errorf("%s, too many requests: %w", msg, apierr.ErrRateLimit)
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return fmt.Errorf("%s: %w", msg, apierr.ErrTimeout)
	case http.StatusNotFound, http.StatusGone:
		return fmt.Errorf("%s: %w", msg, ErrVideoUnavailable)
	}
	if code >= 400 && code < 500 {
		return fmt.Errorf("%s: %w", msg, apierr.ErrBadRequest)
	}
	return errors.New(msg)
}

// ---------------------------------------------------------------------------
// Player response
// ---------------------------------------------------------------------------

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" = auto-generated
}

type playerResponse struct {
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

func (p playerResponse) captionTracks() []captionTrack {
	if p.Captions == nil {
		return nil
	}
	return p.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
}

// unplayableReason returns YouTube's reason when the video cannot be played.
func (p playerResponse) unplayableReason() string {
	s := p.PlayabilityStatus
	if s == nil || s.Status == "" || s.Status == "OK" {
		return ""
	}
	if s.Reason != "" {
		return s.Reason
	}
	return "video status " + s.Status
}

// parsePlayerResponse finds the inline script assigning ytInitialPlayerResponse
// and decodes the object literal it assigns.
func parsePlayerResponse(page []byte) (playerResponse, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(page)))
	if err != nil {
		return playerResponse{}, fmt.Errorf("parse watch page: %w", err)
	}

	var (
		p        playerResponse
		found    bool
		firstErr error
	)
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		for _, loc := range playerResponseAssign.FindAllStringIndex(text, -1) {
			raw := extractJSONObject(text[loc[1]-1:])
			if raw == "" {
				continue
			}
			var candidate playerResponse
			if err := json.Unmarshal([]byte(raw), &candidate); err != nil {
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			p, found = candidate, true
			return false
		}
		return true
	})
	if found {
		return p, nil
	}
	if firstErr != nil {
		return playerResponse{}, fmt.Errorf("decode %s: %v: %w", playerResponseMarker, firstErr, ErrUnexpectedPage)
	}
	return playerResponse{}, fmt.Errorf("%s not found: %w", playerResponseMarker, ErrUnexpectedPage)
}

// extractJSONObject returns the first balanced {...} in s, honouring
// string literals and escapes. Returns "" if none is complete.
func extractJSONObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}

// pickTrack selects the caption track to download:
//  1. manual track in the preferred language
//  2. auto-generated track in the preferred language
//  3. any English track
//  4. the first track
//
// tracks must not be empty.
func pickTrack(tracks []captionTrack, preferred lang.Language) captionTrack {
	want := preferred.BaseCode()
	if want == "" {
		want = "en"
	}
	for _, t := range tracks {
		if baseLanguage(t.LanguageCode) == want && t.Kind != "asr" {
			return t
		}
	}
	for _, t := range tracks {
		if baseLanguage(t.LanguageCode) == want {
			return t
		}
	}
	for _, t := range tracks {
		if baseLanguage(t.LanguageCode) == "en" {
			return t
		}
	}
	return tracks[0]
}

func baseLanguage(code string) string {
	code = strings.ToLower(code)
	if idx := strings.IndexAny(code, "-_"); idx != -1 {
		return code[:idx]
	}
	return code
}

// ---------------------------------------------------------------------------
// Timedtext XML
// ---------------------------------------------------------------------------

type timedText struct {
	Lines []struct {
		Start    float64 `xml:"start,attr"`
		Duration float64 `xml:"dur,attr"`
		Text     string  `xml:",chardata"`
	} `xml:"text"`
}

// parseTimedText decodes <transcript><text start dur>...</text></transcript>.
// Caption text arrives HTML-escaped inside the XML escaping, so it is
// unescaped once more.
func parseTimedText(body []byte) ([]Segment, error) {
	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, fmt.Errorf("parse timedtext XML: %w", err)
	}
	segs := make([]Segment, 0, len(tt.Lines))
	for _, l := range tt.Lines {
		segs = append(segs, Segment{
			Text:     html.UnescapeString(l.Text),
			Start:    l.Start,
			Duration: l.Duration,
		})
	}
	return segs, nil
}
