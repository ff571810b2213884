package transport

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"monday-boards-mcp/internal/mcp"
)

// statusResponse is the informational payload served at GET /.
// It carries no protocol semantics; clients use it as a liveness probe.
type statusResponse struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	Status    string `json:"status"`
	Tools     int    `json:"tools"`
	Resources int    `json:"resources"`
}

// statusHandler serves the informational GET / payload.
type statusHandler struct {
	name             string
	version          string
	toolRegistry     mcp.ToolRegistry
	resourceRegistry mcp.ResourceRegistry
	log              *logrus.Entry
}

// NewStatusHandler creates the handler for the root status endpoint.
func NewStatusHandler(name, version string, tools mcp.ToolRegistry, resources mcp.ResourceRegistry) http.Handler {
	if tools == nil {
		panic("tool registry cannot be nil")
	}
	if resources == nil {
		panic("resource registry cannot be nil")
	}

	return &statusHandler{
		name:             name,
		version:          version,
		toolRegistry:     tools,
		resourceRegistry: resources,
		log:              logrus.WithField("component", "transport"),
	}
}

// ServeHTTP handles GET requests for server status.
func (h *statusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set(HeaderContentType, ContentTypeJSON)
	w.WriteHeader(http.StatusOK)

	resp := statusResponse{
		Name:      h.name,
		Version:   h.version,
		Status:    "running",
		Tools:     len(h.toolRegistry.ListTools()),
		Resources: len(h.resourceRegistry.ListResources()),
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.log.WithError(err).Error("failed to encode status response")
	}
}

// healthResponse represents the JSON response for health checks.
type healthResponse struct {
	Status string `json:"status"`
}

// healthHandler provides a simple health check endpoint.
type healthHandler struct {
	log *logrus.Entry
}

// NewHealthHandler creates a handler for the /health endpoint.
func NewHealthHandler() http.Handler {
	return &healthHandler{
		log: logrus.WithField("component", "transport"),
	}
}

// ServeHTTP handles GET requests for health checks.
func (h *healthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set(HeaderContentType, ContentTypeJSON)
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(healthResponse{Status: "ok"}); err != nil {
		h.log.WithError(err).Error("failed to encode health response")
	}
}
