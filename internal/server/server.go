package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/averycrespi/calc-mcp/internal/session"
	"github.com/averycrespi/calc-mcp/internal/tools"
	"github.com/averycrespi/calc-mcp/pkg/project"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/server"
)

const shutdownTimeout = 5 * time.Second

var (
	_ types.Server       = &CalcServer{}
	_ types.SessionStore = &session.Manager{}
)

// CalcServer represents the calculator MCP server
type CalcServer struct {
	mcpServer *server.MCPServer
	sessions  *session.Manager
	config    types.Config
}

// NewCalcServer creates a new calculator MCP server with every tool registered
func NewCalcServer(config types.Config) *CalcServer {
	mcpServer := server.NewMCPServer(project.Name, project.Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	s := &CalcServer{
		mcpServer: mcpServer,
		sessions:  session.NewManager(config.MaxSessions, config.ShouldResetOnError()),
		config:    config,
	}
	s.registerTools()
	return s
}

// MCPServer returns the underlying MCP server
func (s *CalcServer) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// Sessions returns the session registry shared by the tools
func (s *CalcServer) Sessions() *session.Manager {
	return s.sessions
}

// Serve runs the configured transport until ctx is canceled or the client disconnects
func (s *CalcServer) Serve(ctx context.Context) error {
	slog.Info("Starting calc MCP server",
		"version", project.Version,
		"transport", s.config.Transport,
		"max_sessions", s.config.MaxSessions,
		"reset_on_error", s.config.ShouldResetOnError(),
	)

	switch s.config.Transport {
	case types.TransportSSE:
		return s.ServeSSE(ctx)
	default:
		return s.ServeStdio(ctx, os.Stdin, os.Stdout)
	}
}

// ServeStdio serves MCP over newline-delimited JSON-RPC on in and out
func (s *CalcServer) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.mcpServer)
	stdio.SetErrorLogger(slog.NewLogLogger(slog.Default().Handler(), slog.LevelError))

	if err := stdio.Listen(ctx, in, out); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}

	slog.Info("Stopped calc MCP server")
	return nil
}

// ServeSSE serves MCP over server-sent events on the configured address
func (s *CalcServer) ServeSSE(ctx context.Context) error {
	var opts []server.SSEOption
	if s.config.BaseURL != "" {
		opts = append(opts, server.WithBaseURL(s.config.BaseURL))
	}
	sse := server.NewSSEServer(s.mcpServer, opts...)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Listening for SSE clients", "address", s.config.Address)
		errCh <- sse.Start(s.config.Address)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve SSE: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := sse.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown SSE server: %w", err)
		}
		slog.Info("Stopped calc MCP server")
		return nil
	}
}

func (s *CalcServer) registerTools() {
	for _, tool := range tools.All(s.sessions) {
		definition := tool.GetTool()
		s.mcpServer.AddTool(definition, tool.Handle)
		slog.Debug("Registered tool", "tool", definition.Name)
	}
}
