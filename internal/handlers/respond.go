package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/josejalvarezm/autoinx-functions/internal/domain"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, errorResponse{Error: message, Details: details})
}

// fail maps err to its HTTP status. Server-side details are logged, not returned.
func fail(w http.ResponseWriter, logger domain.Logger, msg string, err error) {
	status := domain.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error(msg, err)
		writeError(w, status, "Internal server error", "")
		return
	}
	logger.Info(msg, "status", status, "error", err.Error())
	writeError(w, status, http.StatusText(status), err.Error())
}

func methodNotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	writeError(w, http.StatusMethodNotAllowed, "Method not allowed", "")
}
