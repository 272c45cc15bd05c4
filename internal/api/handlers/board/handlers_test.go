package board

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"MedBoard/internal/api/middleware"
	coreBoard "MedBoard/internal/core/board"
	"MedBoard/internal/core/comments"
	"MedBoard/internal/core/identity"
	"MedBoard/internal/core/posts"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) CreatePost(ctx context.Context, id identity.Identity, text string) (*posts.Post, error) {
	args := m.Called(ctx, id, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.Post), args.Error(1)
}

func (m *mockService) EditPost(ctx context.Context, id identity.Identity, postID int64, newText string) error {
	args := m.Called(ctx, id, postID, newText)
	return args.Error(0)
}

func (m *mockService) DeletePost(ctx context.Context, id identity.Identity, postID int64) error {
	args := m.Called(ctx, id, postID)
	return args.Error(0)
}

func (m *mockService) AddComment(ctx context.Context, id identity.Identity, postID int64, text string) (*comments.Comment, error) {
	args := m.Called(ctx, id, postID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*comments.Comment), args.Error(1)
}

func (m *mockService) ListComments(ctx context.Context, postID int64) ([]*comments.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*comments.Comment), args.Error(1)
}

func (m *mockService) ToggleLike(ctx context.Context, id identity.Identity, postID int64) (bool, error) {
	args := m.Called(ctx, id, postID)
	return args.Bool(0), args.Error(1)
}

func (m *mockService) RemoveLike(ctx context.Context, id identity.Identity, postID int64) error {
	args := m.Called(ctx, id, postID)
	return args.Error(0)
}

func (m *mockService) LikeCount(ctx context.Context, postID int64) (int, error) {
	args := m.Called(ctx, postID)
	return args.Int(0), args.Error(1)
}

func (m *mockService) ViewBoard(ctx context.Context, roleFilter string) ([]*posts.EnrichedPost, error) {
	args := m.Called(ctx, roleFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*posts.EnrichedPost), args.Error(1)
}

// newTestRouter wires the handlers onto a chi router the way the routes
// package does, with identity required on writes
func newTestRouter(svc coreBoard.Service) chi.Router {
	r := chi.NewRouter()
	postHandler := NewPostHandler(svc)
	commentHandler := NewCommentHandler(svc)
	likeHandler := NewLikeHandler(svc)

	r.Get("/api/posts", postHandler.HandleList)
	r.With(middleware.RequireIdentity).Post("/api/posts", postHandler.HandleCreate)
	r.With(middleware.RequireIdentity).Put("/api/posts/{postID}", postHandler.HandleEdit)
	r.With(middleware.RequireIdentity).Delete("/api/posts/{postID}", postHandler.HandleDelete)
	r.Get("/api/posts/{postID}/comments", commentHandler.HandleList)
	r.With(middleware.RequireIdentity).Post("/api/posts/{postID}/comments", commentHandler.HandleAdd)
	r.With(middleware.RequireIdentity).Post("/api/posts/{postID}/like", likeHandler.HandleToggle)
	r.Get("/api/posts/{postID}/likes/count", likeHandler.HandleCount)
	return r
}

func asIdentity(req *http.Request, name, role string) *http.Request {
	req.Header.Set("X-User-Name", name)
	req.Header.Set("X-User-Role", role)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandleCreate_RequiresIdentityHeaders(t *testing.T) {
	svc := new(mockService)
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(`{"text":"Hi"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	svc.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleCreate_Success(t *testing.T) {
	svc := new(mockService)
	router := newTestRouter(svc)

	ann := identity.Identity{Name: "Ann", Role: identity.RoleDoctor}
	svc.On("CreatePost", mock.Anything, ann, "Hi").
		Return(&posts.Post{ID: 1, Author: "Ann", Role: "doctor", Text: "Hi"}, nil)

	req := asIdentity(httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(`{"text":"Hi"}`)), "Ann", "doctor")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"author":"Ann"`)
	svc.AssertExpectations(t)
}

func TestHandleCreate_ValidationErrorIs400(t *testing.T) {
	svc := new(mockService)
	router := newTestRouter(svc)

	svc.On("CreatePost", mock.Anything, mock.Anything, "  ").
		Return(nil, posts.NewValidationError("text", "text is required"))

	req := asIdentity(httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(`{"text":"  "}`)), "Ann", "doctor")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "InvalidRequest")
}

func TestHandleEdit_ForbiddenIs403(t *testing.T) {
	svc := new(mockService)
	router := newTestRouter(svc)

	svc.On("EditPost", mock.Anything, mock.Anything, int64(7), "defaced").
		Return(coreBoard.ErrForbidden)

	req := asIdentity(httptest.NewRequest(http.MethodPut, "/api/posts/7", strings.NewReader(`{"text":"defaced"}`)), "Bob", "patient")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Forbidden")
}

func TestHandleDelete_UnknownPostIs404(t *testing.T) {
	svc := new(mockService)
	router := newTestRouter(svc)

	svc.On("DeletePost", mock.Anything, mock.Anything, int64(404)).
		Return(posts.ErrNotFound)

	req := asIdentity(httptest.NewRequest(http.MethodDelete, "/api/posts/404", nil), "Root", "admin")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleDelete_BadIDIs400(t *testing.T) {
	svc := new(mockService)
	router := newTestRouter(svc)

	req := asIdentity(httptest.NewRequest(http.MethodDelete, "/api/posts/abc", nil), "Root", "admin")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "DeletePost", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleListComments_MissingPostIs404(t *testing.T) {
	svc := new(mockService)
	router := newTestRouter(svc)

	svc.On("ListComments", mock.Anything, int64(9)).Return(nil, posts.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/posts/9/comments", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleToggle_ReportsLikedState(t *testing.T) {
	svc := new(mockService)
	router := newTestRouter(svc)

	bob := identity.Identity{Name: "Bob", Role: identity.RolePatient}
	svc.On("ToggleLike", mock.Anything, bob, int64(3)).Return(true, nil)

	req := asIdentity(httptest.NewRequest(http.MethodPost, "/api/posts/3/like", nil), "Bob", "patient")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"liked":true}`, rec.Body.String())
}

func TestHandleCount(t *testing.T) {
	svc := new(mockService)
	router := newTestRouter(svc)

	svc.On("LikeCount", mock.Anything, int64(3)).Return(2, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/posts/3/likes/count", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":2}`, rec.Body.String())
}

func TestHandleList_StorageFaultIs500(t *testing.T) {
	svc := new(mockService)
	router := newTestRouter(svc)

	svc.On("ViewBoard", mock.Anything, "").
		Return(nil, posts.NewStorageError("list posts", assert.AnError))

	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "assert.AnError", "internal details must not leak")
}
