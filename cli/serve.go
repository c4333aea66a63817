package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/indiepages/indiepages/engine/infra/server"
	"github.com/indiepages/indiepages/pkg/config"
	"github.com/indiepages/indiepages/pkg/logger"
)

// ServeCmd runs the HTTP server until interrupted.
func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the directory HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if envFile, err := cmd.Flags().GetString("env-file"); err == nil && envFile != "" {
				if err := godotenv.Load(envFile); err != nil {
					return fmt.Errorf("loading env file %s: %w", envFile, err)
				}
			}
			logLevel, logJSON, logSource, err := logger.GetLoggerConfig(cmd)
			if err != nil {
				return err
			}
			logger.SetupLogger(logLevel, logJSON, logSource)
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			ctx = config.ContextWithConfig(ctx, cfg)
			ctx = logger.ContextWithLogger(ctx, logger.GetDefault())

			srv, err := server.NewServer(ctx)
			if err != nil {
				return err
			}
			return srv.Run(ctx)
		},
	}
}
