package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/averycrespi/calc-mcp/internal/config"
	"github.com/averycrespi/calc-mcp/internal/server"

	"github.com/spf13/cobra"
)

func newServeCmd(logLevel *string) *cobra.Command {
	var (
		configPath string
		transport  string
		address    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator over MCP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if *logLevel != "" {
				cfg.LogLevel = *logLevel
			}
			if cmd.Flags().Changed("transport") {
				cfg.Transport = transport
			}
			if cmd.Flags().Changed("address") {
				cfg.Address = address
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}
			if err := setupLogging(cfg.LogLevel); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.NewCalcServer(cfg).Serve(ctx)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML configuration file")
	cmd.Flags().StringVar(&transport, "transport", config.DefaultTransport, "Transport (stdio, sse)")
	cmd.Flags().StringVar(&address, "address", config.DefaultAddress, "Listen address for the sse transport")
	return cmd
}
