package transport

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"monday-boards-mcp/internal/mcp"
)

// mcpHandler handles MCP protocol requests over HTTP.
type mcpHandler struct {
	handler   mcp.Handler
	responder ErrorResponder
	log       *logrus.Entry
}

// NewMCPHandler creates a handler for MCP JSON-RPC requests.
// It decodes the JSON-RPC request, delegates to the dispatcher, and
// encodes the JSON-RPC response. JSON-RPC level errors are still HTTP 200;
// only transport-level failures (unreadable or malformed body) map to
// HTTP status codes, always with a JSON error body.
func NewMCPHandler(handler mcp.Handler, responder ErrorResponder) http.Handler {
	if handler == nil {
		panic("handler cannot be nil")
	}
	if responder == nil {
		panic("responder cannot be nil")
	}

	return &mcpHandler{
		handler:   handler,
		responder: responder,
		log:       logrus.WithField("component", "transport"),
	}
}

// ServeHTTP handles POST requests for the MCP protocol.
func (h *mcpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if ct := r.Header.Get(HeaderContentType); ct != "" && ct != ContentTypeJSON {
		h.log.WithField("content_type", ct).Warn("unexpected content type")
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.log.WithError(err).Error("failed to read request body")
		h.responder.BadRequest(w, err)
		return
	}
	defer func() {
		if closeErr := r.Body.Close(); closeErr != nil {
			h.log.WithError(closeErr).Warn("failed to close request body")
		}
	}()

	if len(body) == 0 {
		h.responder.BadRequest(w, fmt.Errorf("no data received"))
		return
	}

	var req mcp.Request
	if err := json.Unmarshal(body, &req); err != nil {
		h.log.WithError(err).Error("failed to parse JSON-RPC request")
		h.responder.BadRequest(w, fmt.Errorf("invalid JSON-RPC request: %w", err))
		return
	}

	// The dispatcher is the failure boundary: it always returns a
	// well-formed response, never an error.
	resp := h.handler.Handle(r.Context(), &req)

	w.Header().Set(HeaderContentType, ContentTypeJSON)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		// Headers are already written; nothing more to send.
		h.log.WithError(err).Error("failed to encode JSON-RPC response")
	}
}
