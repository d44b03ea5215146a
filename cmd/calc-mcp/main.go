package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/averycrespi/calc-mcp/internal/config"
	"github.com/averycrespi/calc-mcp/pkg/project"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:          project.Name,
		Short:        "Desk calculator exposed as an MCP server",
		Version:      project.Version,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newServeCmd(&logLevel),
		newReplCmd(&logLevel),
		newEvalCmd(&logLevel),
	)
	return cmd
}

// setupLogging installs the default logger. Logs always go to stderr
// because stdout carries the stdio transport.
func setupLogging(level string) error {
	lvl, err := config.ParseLogLevel(level)
	if err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
	return nil
}

// quietLevel is used by the interactive commands unless --log-level is given
func quietLevel(level string) string {
	if level == "" {
		return "warn"
	}
	return level
}
