package board

import (
	"encoding/json"
	"log"
	"net/http"

	"MedBoard/internal/core/board"
	"MedBoard/internal/core/comments"
	"MedBoard/internal/core/likes"
	"MedBoard/internal/core/posts"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(errorResponse{
		Error:   errorType,
		Message: message,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// writeJSON writes a JSON success response
func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Headers already sent; log only
		log.Printf("Failed to encode response: %v", err)
	}
}

// handleServiceError maps core errors to HTTP responses.
// ValidationError -> 400, NotFound -> 404, Forbidden -> 403, anything else
// (storage faults included) -> 500 without leaking internals.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case posts.IsValidationError(err),
		comments.IsValidationError(err),
		likes.IsValidationError(err):
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	case posts.IsNotFound(err),
		comments.IsNotFound(err),
		likes.IsNotFound(err):
		writeError(w, http.StatusNotFound, "NotFound", err.Error())

	case board.IsForbidden(err):
		writeError(w, http.StatusForbidden, "Forbidden", "You are not allowed to modify this post")

	default:
		log.Printf("Unexpected error in board handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
