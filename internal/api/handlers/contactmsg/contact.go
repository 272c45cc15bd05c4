package contactmsg

import (
	"encoding/json"
	"log"
	"net/http"

	"MedBoard/internal/api/middleware"
	"MedBoard/internal/core/contact"
)

// Handler handles contact-form submissions
type Handler struct {
	service contact.Service
}

// NewHandler creates a new contact handler
func NewHandler(service contact.Service) *Handler {
	return &Handler{service: service}
}

type submitInput struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
}

// HandleSubmit handles POST /api/contact
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var input submitInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	msg, err := h.service.Submit(r.Context(), input.FullName, input.Email, input.Subject, input.Message)
	if err != nil {
		if contact.IsValidationError(err) {
			writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
			return
		}
		log.Printf("Unexpected error in contact handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError", "An internal error occurred")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(map[string]int64{"id": msg.ID}); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// HandleList handles GET /api/contact. Messages contain visitor contact
// details, so listing is restricted to staff.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.GetIdentity(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}
	if !id.Role.IsStaff() {
		writeError(w, http.StatusForbidden, "NotAuthorized", "Not authorized to view contact messages")
		return
	}

	list, err := h.service.List(r.Context())
	if err != nil {
		log.Printf("Unexpected error in contact handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError", "An internal error occurred")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(list); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error":   errorType,
		"message": message,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}
