// Package resources implements the built-in MCP resource providers.
package resources

import (
	"context"
	"encoding/json"

	"monday-boards-mcp/internal/mcp"
)

// ConfigURI is the URI of the built-in server configuration resource.
const ConfigURI = "config://server"

// serverConfig is the document served at config://server.
type serverConfig struct {
	Version     string   `json:"version"`
	Environment string   `json:"environment"`
	Features    []string `json:"features"`
}

// configResource serves a fixed configuration document describing the
// server: its version, environment tag, and supported feature categories.
type configResource struct {
	version     string
	environment string
}

// NewConfigResource creates the config://server resource provider.
func NewConfigResource(version, environment string) mcp.ResourceProvider {
	return &configResource{
		version:     version,
		environment: environment,
	}
}

// Read serializes the configuration document as pretty-printed JSON.
func (r *configResource) Read(_ context.Context) (*mcp.Resource, error) {
	doc := serverConfig{
		Version:     r.version,
		Environment: r.environment,
		Features:    []string{"tools", "resources"},
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}

	return &mcp.Resource{
		URI:      ConfigURI,
		MimeType: "application/json",
		Text:     string(data),
	}, nil
}

// Definition returns the resource's metadata.
func (r *configResource) Definition() mcp.ResourceDefinition {
	return mcp.ResourceDefinition{
		URI:         ConfigURI,
		Name:        "Server Configuration",
		Description: "Server configuration information",
		MimeType:    "application/json",
	}
}
