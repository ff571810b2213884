package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Validate checks that the configuration is valid and complete.
// It returns an error if required fields are missing or values are invalid.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if err := validateServer(cfg); err != nil {
		return fmt.Errorf("invalid server config: %w", err)
	}

	if err := validateData(cfg); err != nil {
		return fmt.Errorf("invalid data config: %w", err)
	}

	return nil
}

// validateServer validates the server-related fields.
func validateServer(cfg *Config) error {
	if cfg.Addr == "" {
		return fmt.Errorf("MCP_SERVER_ADDR is required")
	}

	if cfg.ServerName == "" {
		return fmt.Errorf("MCP_SERVER_NAME is required")
	}

	if cfg.ServerVersion == "" {
		return fmt.Errorf("MCP_SERVER_VERSION is required")
	}

	if cfg.ReadTimeout <= 0 {
		return fmt.Errorf("MCP_SERVER_READ_TIMEOUT must be positive")
	}

	if cfg.WriteTimeout <= 0 {
		return fmt.Errorf("MCP_SERVER_WRITE_TIMEOUT must be positive")
	}

	// 0 is allowed, meaning no idle timeout
	if cfg.IdleTimeout < 0 {
		return fmt.Errorf("MCP_SERVER_IDLE_TIMEOUT must be non-negative")
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid MCP_LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	return nil
}

// validateData validates the data provider fields. Board and document
// names become filenames, so anything path-like is rejected up front.
func validateData(cfg *Config) error {
	if cfg.BoardsDir == "" {
		return fmt.Errorf("MCP_BOARDS_DIR is required")
	}

	if cfg.DocsDir == "" {
		return fmt.Errorf("MCP_DOCS_DIR is required")
	}

	for i, board := range cfg.Boards {
		if err := validateDataName(board); err != nil {
			return fmt.Errorf("invalid MCP_BOARDS[%d]: %w", i, err)
		}
	}

	for i, document := range cfg.Documents {
		if err := validateDataName(document); err != nil {
			return fmt.Errorf("invalid MCP_DOCUMENTS[%d]: %w", i, err)
		}
	}

	return nil
}

// validateDataName rejects empty or path-like board/document names.
func validateDataName(name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("name %q must not contain path separators", name)
	}
	return nil
}
