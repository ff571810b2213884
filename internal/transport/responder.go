package transport

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// errorResponse represents a JSON error response body.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// errorResponder implements ErrorResponder.
type errorResponder struct {
	log *logrus.Entry
}

// NewErrorResponder creates a responder that writes JSON error bodies for
// transport-level failures.
func NewErrorResponder() ErrorResponder {
	return &errorResponder{
		log: logrus.WithField("component", "transport"),
	}
}

// InternalError sends a 500 Internal Server Error response.
// The response body contains a JSON error message.
func (e *errorResponder) InternalError(w http.ResponseWriter, err error) {
	w.Header().Set(HeaderContentType, ContentTypeJSON)
	w.WriteHeader(http.StatusInternalServerError)

	e.log.WithError(err).Error("internal server error")

	resp := errorResponse{
		Error:   "internal_error",
		Message: "An internal server error occurred",
	}
	if encodeErr := json.NewEncoder(w).Encode(resp); encodeErr != nil {
		e.log.WithError(encodeErr).Error("failed to encode error response")
	}
}

// BadRequest sends a 400 Bad Request response.
// The response body contains a JSON error message.
func (e *errorResponder) BadRequest(w http.ResponseWriter, err error) {
	w.Header().Set(HeaderContentType, ContentTypeJSON)
	w.WriteHeader(http.StatusBadRequest)

	e.log.WithError(err).Warn("bad request")

	message := "Invalid request"
	if err != nil {
		message = err.Error()
	}

	resp := errorResponse{
		Error:   "bad_request",
		Message: message,
	}
	if encodeErr := json.NewEncoder(w).Encode(resp); encodeErr != nil {
		e.log.WithError(encodeErr).Error("failed to encode error response")
	}
}
