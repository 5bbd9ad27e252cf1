package cli

import (
	"context"
	"fmt"

	"github.com/alnah/notegpt/internal/config"
	"github.com/alnah/notegpt/internal/summarize"
)

// loadConfig loads the persistent config. A broken config file is reported
// on stderr and ignored so that flags alone still work.
func loadConfig(env *Env) config.Config {
	cfg, err := env.ConfigLoader.Load()
	if err != nil {
		_, _ = fmt.Fprintf(env.Stderr, "Warning: ignoring config: %v\n", err)
		return config.Config{}
	}
	return cfg
}

// resolveProvider layers the --provider flag over the config value and
// falls back to Gemini.
func resolveProvider(flag Provider, cfg config.Config) (Provider, error) {
	if !flag.IsZero() {
		return flag, nil
	}
	p, err := ParseProvider(cfg.Provider)
	if err != nil {
		return Provider{}, fmt.Errorf("config %s: %w", config.KeyProvider, err)
	}
	return p.OrDefault(), nil
}

// resolveModel returns the --model flag, else the configured model.
// Empty means the provider default.
func resolveModel(flag string, cfg config.Config) string {
	if flag != "" {
		return flag
	}
	return cfg.Model
}

// newGenerator reads the provider's API key from the environment and
// builds the generator. Provider must be validated before calling.
func newGenerator(ctx context.Context, env *Env, p Provider, model string) (summarize.Generator, error) {
	keyEnv := p.APIKeyEnv()
	apiKey := env.Getenv(keyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("%s: %w (set it with: export %s=...)", keyEnv, ErrAPIKeyMissing, keyEnv)
	}
	return env.GeneratorFactory.NewGenerator(ctx, p, apiKey, model)
}
