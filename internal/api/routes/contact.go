package routes

import (
	"github.com/go-chi/chi/v5"

	"MedBoard/internal/api/handlers/contactmsg"
	"MedBoard/internal/api/middleware"
	"MedBoard/internal/core/contact"
)

// RegisterContactRoutes registers the contact-form endpoint.
// Anonymous visitors may submit, so there is no identity requirement, only
// rate limiting.
func RegisterContactRoutes(r chi.Router, service contact.Service, limiter *middleware.RateLimiter) {
	handler := contactmsg.NewHandler(service)

	r.With(limiter.Middleware).Post("/api/contact", handler.HandleSubmit)
	r.With(middleware.RequireIdentity).Get("/api/contact", handler.HandleList)
}
