package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alnah/notegpt/internal/config"
	"github.com/alnah/notegpt/internal/format"
	"github.com/alnah/notegpt/internal/lang"
	"github.com/alnah/notegpt/internal/summarize"
	"github.com/alnah/notegpt/internal/youtube"
)

// stdoutPath forces output to stdout even when output-dir is configured.
const stdoutPath = "-"

// SummarizeOptions holds validated input for the summarize command.
type SummarizeOptions struct {
	URL     string
	VideoID youtube.VideoID
	// Output language (optional): zero value = English
	Lang lang.Language
	// Provider (optional): zero value = config, then Gemini
	Provider Provider
	// Model (optional): empty = config, then the provider default
	Model string
	// Output (optional): file path, "-" for stdout
	Output       string
	FetchTimeout time.Duration
}

// ParseSummarizeOptions validates raw command input.
func ParseSummarizeOptions(rawURL, rawLang, rawProvider, model, output string, fetchTimeout time.Duration) (SummarizeOptions, error) {
	id, err := youtube.ParseVideoID(rawURL)
	if err != nil {
		return SummarizeOptions{}, err
	}
	outputLang, err := lang.Parse(rawLang)
	if err != nil {
		return SummarizeOptions{}, err
	}
	p, err := ParseProvider(rawProvider)
	if err != nil {
		return SummarizeOptions{}, err
	}
	return SummarizeOptions{
		URL:          rawURL,
		VideoID:      id,
		Lang:         outputLang,
		Provider:     p,
		Model:        model,
		Output:       output,
		FetchTimeout: fetchTimeout,
	}, nil
}

// SummarizeCmd creates the summarize command.
func SummarizeCmd(env *Env) *cobra.Command {
	var (
		outputLang   string
		provider     string
		model        string
		output       string
		fetchTimeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "summarize <youtube-url>",
		Short: "Summarize a YouTube video from its transcript",
		Long: `Fetch the caption transcript of a YouTube video and ask a generative-AI
provider for a structured summary: main topic, key points, important details
and conclusion.

The summary is printed to stdout. With -o, or when output-dir is configured,
it is written to a Markdown file instead (use -o - to force stdout).

Providers (--provider, or config key "provider"):
  gemini     GEMINI_API_KEY     gemini-2.5-flash (default)
  openai     OPENAI_API_KEY     gpt-4o-mini
  deepseek   DEEPSEEK_API_KEY   deepseek-chat`,
		Example: `  notegpt summarize https://www.youtube.com/watch?v=dQw4w9WgXcQ
  notegpt summarize https://youtu.be/dQw4w9WgXcQ --lang fr -o notes.md
  notegpt summarize https://youtu.be/dQw4w9WgXcQ --provider openai --model gpt-4o`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := ParseSummarizeOptions(args[0], outputLang, provider, model, output, fetchTimeout)
			if err != nil {
				return err
			}
			return runSummarize(cmd.Context(), env, opts)
		},
	}

	cmd.Flags().StringVarP(&outputLang, "lang", "l", "", "Summary language (ISO 639-1, e.g. fr, pt-BR)")
	cmd.Flags().StringVarP(&provider, "provider", "p", "", "Generative-AI provider: gemini, openai, deepseek")
	cmd.Flags().StringVarP(&model, "model", "m", "", "Model name (default: provider default)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().DurationVar(&fetchTimeout, "fetch-timeout", 0, "Timeout for each YouTube request (default 30s)")

	return cmd
}

// runSummarize executes the summarize workflow.
func runSummarize(ctx context.Context, env *Env, opts SummarizeOptions) error {
	cfg := loadConfig(env)

	p, err := resolveProvider(opts.Provider, cfg)
	if err != nil {
		return err
	}
	gen, err := newGenerator(ctx, env, p, resolveModel(opts.Model, cfg))
	if err != nil {
		return err
	}

	svc := summarize.NewService(env.FetcherFactory.NewFetcher(opts.FetchTimeout), gen)

	_, _ = fmt.Fprintf(env.Stderr, "Summarizing %s with %s (%s)...\n", opts.VideoID, p, gen.Model())
	start := env.Now()

	res, err := svc.Summarize(ctx, summarize.Request{URL: opts.URL, Lang: opts.Lang.String()})
	if err != nil {
		return err
	}

	path := summaryOutputPath(opts.Output, cfg.OutputDir, opts.VideoID)
	if path != "" {
		warnNonMarkdownExtension(env.Stderr, path)
	}
	if err := emit(env, path, res.Summary); err != nil {
		return err
	}

	elapsed := format.Elapsed(env.Now().Sub(start))
	if path == "" {
		_, _ = fmt.Fprintf(env.Stderr, "Done in %s\n", elapsed)
	} else {
		_, _ = fmt.Fprintf(env.Stderr, "Wrote %s to %s in %s\n", format.Size(int64(len(res.Summary))), path, elapsed)
	}
	return nil
}

// summaryOutputPath returns the file to write, or "" for stdout.
// Without -o, a configured output-dir receives <video-id>.md.
func summaryOutputPath(output, outputDir string, id youtube.VideoID) string {
	if output == stdoutPath {
		return ""
	}
	if output == "" && outputDir == "" {
		return ""
	}
	return config.ResolveOutputPath(output, outputDir, id.String()+".md")
}
