package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"TokenScope/internal/di"
	"TokenScope/pkg/client"
	"TokenScope/pkg/config"
)

var (
	configPath string
	apiKey     string
	baseURL    string
	timeout    time.Duration
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "tokenscope",
	Short: "Token risk analytics with DexScreener/GoPlus fallback",
	Long: `TokenScope queries the TokenScope analytics API. When the API is
unreachable it rebuilds the same answers from DexScreener market data and
GoPlus contract scans.

Examples:
  tokenscope analyze bsc 0x0e09fabb73bd3ade0a17ecc321fd13a19e81ce82
  tokenscope signals ethereum 0x6982508145454ce325ddbe47a25d4ec3d2311933 --json
  tokenscope serve --config config.yaml`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional
		_ = godotenv.Load()
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "YAML config file (defaults apply when empty)")
	pf.StringVar(&apiKey, "api-key", "", "API key for the primary API (overrides config)")
	pf.StringVar(&baseURL, "base-url", "", "Primary API base URL (overrides config)")
	pf.DurationVar(&timeout, "timeout", 0, "Primary API request timeout, e.g. 30s (overrides config)")
	pf.BoolVar(&jsonOutput, "json", false, "Print raw JSON results")
}

// loadConfig applies file, environment and flag values, in that order.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return nil, err
	}
	if apiKey != "" {
		cfg.API.Key = apiKey
	}
	if baseURL != "" {
		cfg.API.BaseURL = baseURL
	}
	if timeout > 0 {
		cfg.API.Timeout = timeout
	}
	return cfg, cfg.Validate()
}

// withClient runs fn with a client built from the current flags.
func withClient(cmd *cobra.Command, fn func(ctx context.Context, c *client.Client) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	c, err := di.InitializeClient(cfg)
	if err != nil {
		return fmt.Errorf("init client: %w", err)
	}
	defer c.Close()

	return fn(cmd.Context(), c)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
