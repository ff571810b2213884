package mcp

import (
	"errors"
)

// Sentinel errors for MCP operations.
// These are used for error identification and testing.
// For creating domain errors with context, wrap these with DomainError from internal/errors.
var (
	// ErrToolAlreadyRegistered indicates a tool with the same name is already registered.
	ErrToolAlreadyRegistered = errors.New("tool already registered")

	// ErrResourceAlreadyRegistered indicates a resource with the same URI is already registered.
	ErrResourceAlreadyRegistered = errors.New("resource already registered")
)
