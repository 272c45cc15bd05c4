package board

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"MedBoard/internal/api/middleware"
	"MedBoard/internal/core/board"
)

// PostHandler handles post listing, creation, editing, and deletion
type PostHandler struct {
	service board.Service
}

// NewPostHandler creates a new post handler
func NewPostHandler(service board.Service) *PostHandler {
	return &PostHandler{service: service}
}

type createPostInput struct {
	Text string `json:"text"`
}

type editPostInput struct {
	Text string `json:"text"`
}

// HandleList handles GET /api/posts
// Lists posts newest-first, enriched with like counts and comments.
// ?role=doctor restricts to posts authored under that role.
func (h *PostHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	enriched, err := h.service.ViewBoard(r.Context(), r.URL.Query().Get("role"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, enriched)
}

// HandleCreate handles POST /api/posts
func (h *PostHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var input createPostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	id, ok := middleware.GetIdentity(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	post, err := h.service.CreatePost(r.Context(), id, input.Text)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

// HandleEdit handles PUT /api/posts/{postID}
func (h *PostHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	postID, ok := parsePostID(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var input editPostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	id, ok := middleware.GetIdentity(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if err := h.service.EditPost(r.Context(), id, postID, input.Text); err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

// HandleDelete handles DELETE /api/posts/{postID}
// Deletion cascades to the post's comments and likes.
func (h *PostHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	postID, ok := parsePostID(w, r)
	if !ok {
		return
	}

	id, ok := middleware.GetIdentity(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if err := h.service.DeletePost(r.Context(), id, postID); err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// parsePostID extracts and validates the {postID} route parameter, writing
// the error response itself when the value is malformed
func parsePostID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "postID")
	postID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || postID <= 0 {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post ID")
		return 0, false
	}
	return postID, true
}
