// Package config provides configuration management for the Monday boards
// MCP server. Configuration is loaded from environment variables (prefixed
// MCP_) with sensible defaults.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix is the prefix applied to every environment variable.
const envPrefix = "MCP"

// Config holds the complete server configuration in a flat structure.
type Config struct {
	// Server settings

	// Addr is the address to bind the HTTP server (e.g., ":8080").
	Addr string `envconfig:"SERVER_ADDR" default:":8080"`

	// ReadTimeout is the maximum duration for reading the entire request.
	ReadTimeout time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"30s"`

	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the maximum duration to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"120s"`

	// ServerName is the name reported by initialize and the status endpoint.
	ServerName string `envconfig:"SERVER_NAME" default:"monday-boards-mcp"`

	// ServerVersion is the version reported by initialize and config://server.
	ServerVersion string `envconfig:"SERVER_VERSION" default:"1.0.0"`

	// Environment is the environment tag in the config://server resource.
	Environment string `envconfig:"ENVIRONMENT" default:"production"`

	// Data settings

	// BoardsDir is the directory holding board exports as <name>.csv.
	BoardsDir string `envconfig:"BOARDS_DIR" default:"data/boards"`

	// DocsDir is the directory holding documents as <name>.txt or <name>.md.
	DocsDir string `envconfig:"DOCS_DIR" default:"data/docs"`

	// Boards lists the board names registered as get_<name> tools.
	Boards []string `envconfig:"BOARDS" default:"SMMSMasterList,webinarAttendees"`

	// Documents lists the document names registered as get_<name> tools.
	Documents []string `envconfig:"DOCUMENTS"`

	// Transport settings

	// AllowedOrigins lists CORS origins; "*" allows all.
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"*"`

	// LogLevel is the logrus level name (debug, info, warn, error).
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from environment variables and returns a Config.
// Defaults are applied for unset variables and the result is validated;
// an invalid configuration fails startup, never a request.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// String returns a string representation of the configuration (for debugging).
func (c *Config) String() string {
	return fmt.Sprintf("Config{Addr: %s, ServerName: %s, ServerVersion: %s, Environment: %s, BoardsDir: %s, DocsDir: %s, Boards: %v, Documents: %v, ReadTimeout: %v, WriteTimeout: %v, IdleTimeout: %v, AllowedOrigins: %v, LogLevel: %s}",
		c.Addr, c.ServerName, c.ServerVersion, c.Environment,
		c.BoardsDir, c.DocsDir, c.Boards, c.Documents,
		c.ReadTimeout, c.WriteTimeout, c.IdleTimeout, c.AllowedOrigins, c.LogLevel)
}
