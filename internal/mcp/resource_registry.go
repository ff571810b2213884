package mcp

import (
	"fmt"

	internalerrors "monday-boards-mcp/internal/errors"
)

// resourceRegistry implements ResourceRegistry. Same lifecycle as the tool
// registry: built at startup, read-only afterwards.
type resourceRegistry struct {
	order     []string
	providers map[string]ResourceProvider
}

// NewResourceRegistry creates an empty resource registry.
func NewResourceRegistry() ResourceRegistry {
	return &resourceRegistry{
		providers: make(map[string]ResourceProvider),
	}
}

// RegisterResource registers a resource provider under its definition URI.
// Returns an error if the provider is invalid or the URI is already taken.
func (r *resourceRegistry) RegisterResource(provider ResourceProvider) error {
	if provider == nil {
		return internalerrors.New("mcp", "RegisterResource", internalerrors.ErrBadRequest, fmt.Errorf("resource provider cannot be nil"))
	}

	uri := provider.Definition().URI
	if uri == "" {
		return internalerrors.New("mcp", "RegisterResource", internalerrors.ErrBadRequest, fmt.Errorf("resource uri cannot be empty"))
	}

	if _, exists := r.providers[uri]; exists {
		return internalerrors.New("mcp", "RegisterResource", internalerrors.ErrAlreadyRegistered, ErrResourceAlreadyRegistered).
			WithContext("resource_uri", uri)
	}

	r.order = append(r.order, uri)
	r.providers[uri] = provider
	return nil
}

// GetResource retrieves a resource provider by URI.
func (r *resourceRegistry) GetResource(uri string) (ResourceProvider, bool) {
	provider, exists := r.providers[uri]
	return provider, exists
}

// ListResources returns definitions for all registered resources in registration order.
func (r *resourceRegistry) ListResources() []ResourceDefinition {
	definitions := make([]ResourceDefinition, 0, len(r.order))
	for _, uri := range r.order {
		definitions = append(definitions, r.providers[uri].Definition())
	}
	return definitions
}
