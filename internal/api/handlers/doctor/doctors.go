package doctor

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"MedBoard/internal/api/middleware"
	"MedBoard/internal/core/doctors"
)

// Handler handles the doctors directory endpoints
type Handler struct {
	service doctors.Service
}

// NewHandler creates a new doctors directory handler
func NewHandler(service doctors.Service) *Handler {
	return &Handler{service: service}
}

type addDoctorInput struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Bio       string `json:"bio"`
}

// HandleList handles GET /api/doctors
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

// HandleAdd handles POST /api/doctors
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var input addDoctorInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	id, ok := middleware.GetIdentity(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	doctor, err := h.service.Add(r.Context(), id, input.Name, input.Specialty, input.Bio)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, doctor)
}

// HandleRemove handles DELETE /api/doctors/{doctorID}
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	doctorID, err := strconv.ParseInt(chi.URLParam(r, "doctorID"), 10, 64)
	if err != nil || doctorID <= 0 {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid doctor ID")
		return
	}

	id, ok := middleware.GetIdentity(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if err := h.service.Remove(r.Context(), id, doctorID); err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(errorResponse{Error: errorType, Message: message}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case doctors.IsValidationError(err):
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	case doctors.IsNotFound(err):
		writeError(w, http.StatusNotFound, "NotFound", err.Error())
	case err == doctors.ErrNotAuthorized:
		writeError(w, http.StatusForbidden, "Forbidden", "Only doctors and admins may manage the directory")
	default:
		log.Printf("Unexpected error in doctor handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError", "An internal error occurred")
	}
}
