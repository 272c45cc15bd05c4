package routes

import (
	"github.com/go-chi/chi/v5"

	boardHandlers "MedBoard/internal/api/handlers/board"
	"MedBoard/internal/api/middleware"
	"MedBoard/internal/core/board"
)

// RegisterBoardRoutes registers the discussion board endpoints on the router.
// Write endpoints require the identity headers and are rate limited; reads
// are open.
func RegisterBoardRoutes(r chi.Router, service board.Service, limiter *middleware.RateLimiter) {
	postHandler := boardHandlers.NewPostHandler(service)
	commentHandler := boardHandlers.NewCommentHandler(service)
	likeHandler := boardHandlers.NewLikeHandler(service)

	r.Get("/api/posts", postHandler.HandleList)
	r.With(middleware.RequireIdentity, limiter.Middleware).Post("/api/posts", postHandler.HandleCreate)
	r.With(middleware.RequireIdentity).Put("/api/posts/{postID}", postHandler.HandleEdit)
	r.With(middleware.RequireIdentity).Delete("/api/posts/{postID}", postHandler.HandleDelete)

	r.Get("/api/posts/{postID}/comments", commentHandler.HandleList)
	r.With(middleware.RequireIdentity, limiter.Middleware).Post("/api/posts/{postID}/comments", commentHandler.HandleAdd)

	r.With(middleware.RequireIdentity).Post("/api/posts/{postID}/like", likeHandler.HandleToggle)
	r.With(middleware.RequireIdentity).Delete("/api/posts/{postID}/like", likeHandler.HandleRemove)
	r.Get("/api/posts/{postID}/likes/count", likeHandler.HandleCount)
}
