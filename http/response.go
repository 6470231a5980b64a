package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sagarc03/romserve"
)

// ErrorResponse represents a JSON error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// WriteError writes a JSON error response
func WriteError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Error:   errCode,
		Message: message,
	}); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}

// HandleError writes appropriate error response based on error type
func HandleError(w http.ResponseWriter, err error) {
	if errors.Is(err, romserve.ErrNotFound) {
		WriteError(w, http.StatusNotFound, "not_found", "Asset not found")
		return
	}

	if errors.Is(err, romserve.ErrInvalidInput) {
		WriteError(w, http.StatusBadRequest, "invalid_path", "Invalid path")
		return
	}

	if errors.Is(err, ErrMethodNotAllowed) {
		WriteError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Only GET is supported for assets")
		return
	}

	slog.Error("request error", "error", err)
	WriteError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
}

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, code int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(data)
}

// WriteResponse sends a router response. The headers from resp.Header replace
// any already set under the same names, and the body is written as-is;
// compressed bodies are never decoded or re-encoded.
func WriteResponse(w http.ResponseWriter, resp romserve.Response) {
	h := w.Header()
	for name, values := range resp.Header() {
		h[name] = values
	}
	h.Set("Content-Length", strconv.Itoa(len(resp.Body)))

	w.WriteHeader(resp.Status)
	if _, err := w.Write(resp.Body); err != nil {
		slog.Debug("failed to write asset response", "error", err)
	}
}
