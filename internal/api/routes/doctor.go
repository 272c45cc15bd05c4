package routes

import (
	"github.com/go-chi/chi/v5"

	doctorHandlers "MedBoard/internal/api/handlers/doctor"
	"MedBoard/internal/api/middleware"
	"MedBoard/internal/core/doctors"
)

// RegisterDoctorRoutes registers the doctors directory endpoints.
// Listing is open; mutations require identity (the service enforces the
// admin/doctor gate).
func RegisterDoctorRoutes(r chi.Router, service doctors.Service) {
	handler := doctorHandlers.NewHandler(service)

	r.Get("/api/doctors", handler.HandleList)
	r.With(middleware.RequireIdentity).Post("/api/doctors", handler.HandleAdd)
	r.With(middleware.RequireIdentity).Delete("/api/doctors/{doctorID}", handler.HandleRemove)
}
