package board

import (
	"encoding/json"
	"net/http"

	"MedBoard/internal/api/middleware"
	"MedBoard/internal/core/board"
)

// CommentHandler handles listing and adding comments on a post
type CommentHandler struct {
	service board.Service
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(service board.Service) *CommentHandler {
	return &CommentHandler{service: service}
}

type addCommentInput struct {
	Text string `json:"text"`
}

// HandleList handles GET /api/posts/{postID}/comments
// Responds 404 when the post doesn't exist; an existing post with no
// comments yields an empty list.
func (h *CommentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	postID, ok := parsePostID(w, r)
	if !ok {
		return
	}

	list, err := h.service.ListComments(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

// HandleAdd handles POST /api/posts/{postID}/comments
func (h *CommentHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	postID, ok := parsePostID(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var input addCommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	id, ok := middleware.GetIdentity(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	comment, err := h.service.AddComment(r.Context(), id, postID, input.Text)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, comment)
}
