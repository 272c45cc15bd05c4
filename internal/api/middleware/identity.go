package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"MedBoard/internal/core/identity"
)

// Context keys for storing caller information
type contextKey string

const IdentityKey contextKey = "board_identity"

// RequireIdentity enforces that the request carries the identity handed off
// by the login collaborator: X-User-Name and X-User-Role headers. The role
// is validated against the role enum; the pair is otherwise trusted as-is
// (authentication happened upstream).
//
// On success the Identity is injected into the request context.
func RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(r.Header.Get("X-User-Name"))
		if name == "" {
			writeIdentityError(w, "X-User-Name header required")
			return
		}

		role, err := identity.ParseRole(r.Header.Get("X-User-Role"))
		if err != nil {
			log.Printf("[IDENTITY] rejected role ip=%s method=%s path=%s error=%v",
				r.RemoteAddr, r.Method, r.URL.Path, err)
			writeIdentityError(w, "X-User-Role must be patient, doctor, or admin")
			return
		}

		ctx := context.WithValue(r.Context(), IdentityKey, identity.Identity{Name: name, Role: role})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetIdentity extracts the caller identity from the request context.
// Returns false when the request did not pass through RequireIdentity.
func GetIdentity(r *http.Request) (identity.Identity, bool) {
	id, ok := r.Context().Value(IdentityKey).(identity.Identity)
	return id, ok
}

func writeIdentityError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"error":   "AuthRequired",
		"message": message,
	}); err != nil {
		log.Printf("Failed to encode identity error response: %v", err)
	}
}
