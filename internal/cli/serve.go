package cli

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/alnah/notegpt/internal/config"
	"github.com/alnah/notegpt/internal/server"
	"github.com/alnah/notegpt/internal/summarize"
)

const (
	// defaultAddr matches the port the web client historically ran on.
	defaultAddr = ":3000"

	shutdownNotice = "Shutting down... (press Ctrl+C again to force)"
)

// ServeOptions holds validated input for the serve command.
type ServeOptions struct {
	// Addr (optional): empty = config, then defaultAddr
	Addr string
	// Provider (optional): zero value = config, then Gemini
	Provider Provider
	// Model (optional): empty = config, then the provider default
	Model        string
	FetchTimeout time.Duration
	// Origins allowed by CORS. Empty allows any origin.
	Origins []string
	Verbose bool
}

// ParseServeOptions validates raw command input.
func ParseServeOptions(addr, rawProvider, model string, fetchTimeout time.Duration, origins []string, verbose bool) (ServeOptions, error) {
	if addr != "" {
		if err := validateAddr(addr); err != nil {
			return ServeOptions{}, err
		}
	}
	p, err := ParseProvider(rawProvider)
	if err != nil {
		return ServeOptions{}, err
	}
	return ServeOptions{
		Addr:         addr,
		Provider:     p,
		Model:        model,
		FetchTimeout: fetchTimeout,
		Origins:      origins,
		Verbose:      verbose,
	}, nil
}

// validateAddr checks that addr is host:port with a numeric or named port.
func validateAddr(addr string) error {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("%q: %w", addr, ErrInvalidAddr)
	}
	if port == "" {
		return fmt.Errorf("%q has no port: %w", addr, ErrInvalidAddr)
	}
	return nil
}

// ServeCmd creates the serve command.
func ServeCmd(env *Env) *cobra.Command {
	var (
		addr         string
		provider     string
		model        string
		fetchTimeout time.Duration
		origins      []string
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web summarizer",
		Long: `Serve the summarizer page at / and the JSON API under /api:

  GET  /api/health       {"message":"ok"}
  POST /api/transcript   {"url": "...", "lang": "fr"} -> {"summary": "..."}

The first Ctrl+C drains in-flight requests; a second one within two seconds
exits immediately.`,
		Example: `  notegpt serve
  notegpt serve --addr 127.0.0.1:8080 --provider deepseek
  notegpt serve --cors-origin https://notes.example.com -v`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := ParseServeOptions(addr, provider, model, fetchTimeout, origins, verbose)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), env, opts)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default "+defaultAddr+")")
	cmd.Flags().StringVarP(&provider, "provider", "p", "", "Generative-AI provider: gemini, openai, deepseek")
	cmd.Flags().StringVarP(&model, "model", "m", "", "Model name (default: provider default)")
	cmd.Flags().DurationVar(&fetchTimeout, "fetch-timeout", 0, "Timeout for each YouTube request (default 30s)")
	cmd.Flags().StringSliceVar(&origins, "cors-origin", nil, "Allowed CORS origin, repeatable (default: any)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every request at debug level")

	return cmd
}

// runServe builds the service and serves until ctx is cancelled.
func runServe(ctx context.Context, env *Env, opts ServeOptions) error {
	cfg := loadConfig(env)

	addr := opts.Addr
	if addr == "" {
		addr = cfg.Addr
		if addr == "" {
			addr = defaultAddr
		} else if err := validateAddr(addr); err != nil {
			return fmt.Errorf("config %s: %w", config.KeyAddr, err)
		}
	}

	p, err := resolveProvider(opts.Provider, cfg)
	if err != nil {
		return err
	}
	gen, err := newGenerator(ctx, env, p, resolveModel(opts.Model, cfg))
	if err != nil {
		return err
	}

	logger := newLogger(env.Stderr, opts.Verbose)
	svc := summarize.NewService(env.FetcherFactory.NewFetcher(opts.FetchTimeout), gen, summarize.WithLogger(logger))
	srv := server.New(svc, server.WithLogger(logger), server.WithAllowedOrigins(opts.Origins...))

	ctx, stop := env.Interrupts(ctx, shutdownNotice)
	defer stop()

	logger.Info("summarizer ready", "provider", p.String(), "model", gen.Model())
	return srv.ListenAndServe(ctx, addr)
}
