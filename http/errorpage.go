package http

import (
	"io"
	"net/http"
)

// writeDefaultNotFound is the Chain's answer when no handler took the request.
func writeDefaultNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusNotFound)
	_, _ = io.WriteString(w, "Not found: "+r.URL.Path)
}
