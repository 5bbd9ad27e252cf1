package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alnah/notegpt/internal/format"
	"github.com/alnah/notegpt/internal/summarize"
	"github.com/alnah/notegpt/internal/youtube"
)

// TranscriptCmd creates the transcript command.
func TranscriptCmd(env *Env) *cobra.Command {
	var (
		trackLang    string
		timestamps   bool
		output       string
		fetchTimeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "transcript <youtube-url>",
		Short: "Print the caption transcript of a YouTube video",
		Long: `Fetch the caption transcript of a YouTube video without summarizing it.
No API key is needed.

By default the caption texts are joined with single spaces, exactly as they
are sent to the model. --timestamps prints one "[MM:SS] text" line per caption.`,
		Example: `  notegpt transcript https://www.youtube.com/watch?v=dQw4w9WgXcQ
  notegpt transcript https://youtu.be/dQw4w9WgXcQ --lang de --timestamps
  notegpt transcript https://youtu.be/dQw4w9WgXcQ -o transcript.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranscript(cmd.Context(), env, args[0], trackLang, timestamps, output, fetchTimeout)
		},
	}

	cmd.Flags().StringVarP(&trackLang, "lang", "l", "", "Preferred caption language (default: English)")
	cmd.Flags().BoolVarP(&timestamps, "timestamps", "t", false, "Print one timestamped line per caption")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().DurationVar(&fetchTimeout, "fetch-timeout", 0, "Timeout for each YouTube request (default 30s)")

	return cmd
}

// runTranscript fetches and prints one transcript.
func runTranscript(ctx context.Context, env *Env, rawURL, rawLang string, timestamps bool, output string, fetchTimeout time.Duration) error {
	svc := summarize.NewService(env.FetcherFactory.NewFetcher(fetchTimeout), nil)

	tr, err := svc.Transcript(ctx, rawURL, rawLang)
	if err != nil {
		return err
	}

	text := tr.Text()
	if timestamps {
		text = timestampedLines(tr.Segments)
	}
	if output == stdoutPath {
		output = ""
	}
	if err := emit(env, output, text); err != nil {
		return err
	}
	if output != "" {
		_, _ = fmt.Fprintf(env.Stderr, "Wrote %d captions (%s) to %s\n", len(tr.Segments), format.Size(int64(len(text))), output)
	}
	return nil
}

// timestampedLines renders one "[MM:SS] text" line per segment.
func timestampedLines(segs []youtube.Segment) string {
	var b strings.Builder
	for _, s := range segs {
		_, _ = fmt.Fprintf(&b, "[%s] %s\n", format.Offset(s.Start), s.Text)
	}
	return b.String()
}
