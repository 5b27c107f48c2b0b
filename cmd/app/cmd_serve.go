package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"TokenScope/internal/di"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the token API over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		if servePort > 0 {
			cfg.Server.Port = servePort
		}

		app, err := di.InitializeApp(cfg)
		if err != nil {
			return fmt.Errorf("app initialization failed: %w", err)
		}
		return app.Run(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Listen port (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
