package board

import (
	"net/http"

	"MedBoard/internal/api/middleware"
	"MedBoard/internal/core/board"
)

// LikeHandler handles like toggling, explicit removal, and counting
type LikeHandler struct {
	service board.Service
}

// NewLikeHandler creates a new like handler
func NewLikeHandler(service board.Service) *LikeHandler {
	return &LikeHandler{service: service}
}

// HandleToggle handles POST /api/posts/{postID}/like
// Responds with the like state after the flip: {"liked": true|false}
func (h *LikeHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	postID, ok := parsePostID(w, r)
	if !ok {
		return
	}

	id, ok := middleware.GetIdentity(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	liked, err := h.service.ToggleLike(r.Context(), id, postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"liked": liked})
}

// HandleRemove handles DELETE /api/posts/{postID}/like
// Idempotent: removing an absent like still acks.
func (h *LikeHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	postID, ok := parsePostID(w, r)
	if !ok {
		return
	}

	id, ok := middleware.GetIdentity(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if err := h.service.RemoveLike(r.Context(), id, postID); err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"unliked": true})
}

// HandleCount handles GET /api/posts/{postID}/likes/count
func (h *LikeHandler) HandleCount(w http.ResponseWriter, r *http.Request) {
	postID, ok := parsePostID(w, r)
	if !ok {
		return
	}

	count, err := h.service.LikeCount(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"count": count})
}
