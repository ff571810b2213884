// Package main provides the entry point for the Monday boards MCP server.
// It wires together all components using dependency injection and manages
// the server lifecycle with graceful shutdown.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"monday-boards-mcp/internal/config"
	"monday-boards-mcp/internal/mcp"
	"monday-boards-mcp/internal/provider"
	"monday-boards-mcp/internal/resources"
	"monday-boards-mcp/internal/tools"
	"monday-boards-mcp/internal/transport"
)

// rootCmd defines the base command for the server binary.
var rootCmd = &cobra.Command{
	Use:   "server",
	Short: "Serve Monday board data over the Model Context Protocol",
	Long:  "Starts an MCP server exposing board and document tools over JSON-RPC 2.0 behind HTTP. Configuration comes from MCP_* environment variables (a .env file is honored).",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func main() {
	// Load environment from .env if present before config parsing.
	_ = godotenv.Load()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run wires the registries, dispatcher, and transport, then serves until
// the context is cancelled or the server fails.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Validate guarantees the level parses.
	level, _ := logrus.ParseLevel(cfg.LogLevel)
	logrus.SetLevel(level)

	logrus.WithFields(logrus.Fields{
		"addr":        cfg.Addr,
		"boards_dir":  cfg.BoardsDir,
		"docs_dir":    cfg.DocsDir,
		"environment": cfg.Environment,
	}).Info("server configuration loaded")

	// Data provider backing the board and document tools.
	dataProvider := provider.NewFileProvider(cfg.BoardsDir, cfg.DocsDir)

	// Protocol core. The registries are populated here, once, and are
	// read-only for the rest of the process lifetime.
	mcpCfg := &mcp.Config{
		ServerName:    cfg.ServerName,
		ServerVersion: cfg.ServerVersion,
	}
	handler, toolRegistry, resourceRegistry := mcp.NewMCPServices(mcpCfg)

	if err := tools.RegisterAll(toolRegistry, dataProvider, cfg.Boards, cfg.Documents); err != nil {
		return fmt.Errorf("failed to register tools: %w", err)
	}
	if err := resourceRegistry.RegisterResource(resources.NewConfigResource(cfg.ServerVersion, cfg.Environment)); err != nil {
		return fmt.Errorf("failed to register resources: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"server_name":    cfg.ServerName,
		"server_version": cfg.ServerVersion,
		"tools":          len(toolRegistry.ListTools()),
		"resources":      len(resourceRegistry.ListResources()),
	}).Info("mcp services initialized")

	// Transport layer.
	server, err := transport.NewTransportServices(&transport.Config{
		ServerConfig:     cfg,
		MCPHandler:       handler,
		ToolRegistry:     toolRegistry,
		ResourceRegistry: resourceRegistry,
	})
	if err != nil {
		return fmt.Errorf("failed to create transport services: %w", err)
	}

	// Start server in background goroutine
	serverErrCh := make(chan error, 1)
	go func() {
		logrus.WithField("addr", cfg.Addr).Info("starting server")
		if err := server.Start(); err != nil {
			serverErrCh <- err
		}
	}()

	// Wait for shutdown signal or server error
	select {
	case <-ctx.Done():
		logrus.Info("shutdown signal received, stopping server gracefully")
	case err := <-serverErrCh:
		return fmt.Errorf("server error: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	logrus.Info("server stopped")
	return nil
}
