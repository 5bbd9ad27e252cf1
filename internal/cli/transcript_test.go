package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/notegpt/internal/apierr"
	"github.com/alnah/notegpt/internal/lang"
	"github.com/alnah/notegpt/internal/youtube"
)

// ---------------------------------------------------------------------------
// Tests for timestampedLines
// ---------------------------------------------------------------------------

func TestTimestampedLines(t *testing.T) {
	t.Parallel()

	segs := []youtube.Segment{
		{Text: "intro", Start: 0},
		{Text: "middle", Start: 83.9},
		{Text: "late", Start: 3725},
	}
	want := "[00:00] intro\n[01:23] middle\n[01:02:05] late\n"

	if got := timestampedLines(segs); got != want {
		t.Errorf("timestampedLines() = %q, want %q", got, want)
	}
	if got := timestampedLines(nil); got != "" {
		t.Errorf("timestampedLines(nil) = %q, want empty", got)
	}
}

// ---------------------------------------------------------------------------
// Tests for runTranscript
// ---------------------------------------------------------------------------

func TestRunTranscript_PlainText(t *testing.T) {
	t.Parallel()

	env, mocks := testEnv()

	if err := runTranscript(context.Background(), env, testVideoURL, "", false, "", 0); err != nil {
		t.Fatalf("runTranscript() error: %v", err)
	}
	if got := mocks.stdout.String(); got != "never gonna give you up\n" {
		t.Errorf("stdout = %q", got)
	}
	if n := len(mocks.generators.Calls()); n != 0 {
		t.Errorf("NewGenerator calls = %d, want 0 (no API key needed)", n)
	}
}

func TestRunTranscript_Timestamps(t *testing.T) {
	t.Parallel()

	env, mocks := testEnv()

	if err := runTranscript(context.Background(), env, testVideoURL, "", true, "", 0); err != nil {
		t.Fatalf("runTranscript() error: %v", err)
	}
	want := "[00:00] never gonna\n[01:05] give you up\n"
	if got := mocks.stdout.String(); got != want {
		t.Errorf("stdout = %q, want %q", got, want)
	}
}

func TestRunTranscript_PreferredLanguage(t *testing.T) {
	t.Parallel()

	env, mocks := testEnv()

	if err := runTranscript(context.Background(), env, testVideoURL, "es", false, "", 0); err != nil {
		t.Fatalf("runTranscript() error: %v", err)
	}
	calls := mocks.fetchers.fetcher.Calls()
	if len(calls) != 1 || calls[0].Preferred.String() != "es" || calls[0].ID.String() != "dQw4w9WgXcQ" {
		t.Errorf("fetch calls = %+v", calls)
	}
}

func TestRunTranscript_ToFile(t *testing.T) {
	t.Parallel()

	env, mocks := testEnv()
	path := filepath.Join(t.TempDir(), "transcript.txt")

	if err := runTranscript(context.Background(), env, testVideoURL, "", false, path, 0); err != nil {
		t.Fatalf("runTranscript() error: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "never gonna give you up" {
		t.Errorf("file = %q", got)
	}
	stderr := mocks.stderr.String()
	if !strings.Contains(stderr, "Wrote 2 captions") {
		t.Errorf("stderr = %q, want write summary", stderr)
	}
	if strings.Contains(stderr, "Warning") {
		t.Errorf("stderr = %q, transcripts are not Markdown and need no warning", stderr)
	}
}

func TestRunTranscript_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		url      string
		lang     string
		fetchErr error
		want     error
		wantKind apierr.Kind
	}{
		{name: "invalid url", url: "not a url", want: youtube.ErrInvalidURL, wantKind: apierr.KindInput},
		{name: "invalid lang", url: testVideoURL, lang: "xx-invalid-code", want: lang.ErrInvalid, wantKind: apierr.KindInput},
		{
			name:     "video unavailable",
			url:      testVideoURL,
			fetchErr: fmt.Errorf("private video: %w", youtube.ErrVideoUnavailable),
			want:     youtube.ErrVideoUnavailable,
			wantKind: apierr.KindUpstream,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, mocks := testEnv()
			if tt.fetchErr != nil {
				mocks.fetchers.fetcher.FetchFunc = func(context.Context, youtube.VideoID, lang.Language) ([]youtube.Segment, error) {
					return nil, tt.fetchErr
				}
			}

			err := runTranscript(context.Background(), env, tt.url, tt.lang, false, "", 0)
			if !errors.Is(err, tt.want) {
				t.Fatalf("runTranscript() error = %v, want %v", err, tt.want)
			}
			if got := apierr.KindOf(err); got != tt.wantKind {
				t.Errorf("KindOf() = %v, want %v", got, tt.wantKind)
			}
		})
	}
}

func TestTranscriptCmd_Execute(t *testing.T) {
	t.Parallel()

	env, mocks := testEnv()
	cmd := TranscriptCmd(env)
	cmd.SetArgs([]string{"https://youtu.be/dQw4w9WgXcQ", "-t"})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.HasPrefix(mocks.stdout.String(), "[00:00] never gonna") {
		t.Errorf("stdout = %q, want timestamped lines", mocks.stdout.String())
	}
}
