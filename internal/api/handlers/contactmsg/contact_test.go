package contactmsg

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"MedBoard/internal/api/middleware"
	"MedBoard/internal/core/contact"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Submit(ctx context.Context, fullName, email, subject, body string) (*contact.Message, error) {
	args := m.Called(ctx, fullName, email, subject, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contact.Message), args.Error(1)
}

func (m *mockService) List(ctx context.Context) ([]*contact.Message, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*contact.Message), args.Error(1)
}

func newTestRouter(service contact.Service) *chi.Mux {
	handler := NewHandler(service)
	r := chi.NewRouter()
	r.Post("/api/contact", handler.HandleSubmit)
	r.With(middleware.RequireIdentity).Get("/api/contact", handler.HandleList)
	return r
}

func TestHandleSubmit_Created(t *testing.T) {
	service := new(mockService)
	service.On("Submit", mock.Anything, "Ann Smith", "ann@example.com", "Question", "Hello").
		Return(&contact.Message{ID: 7, FullName: "Ann Smith"}, nil)

	body := `{"full_name":"Ann Smith","email":"ann@example.com","subject":"Question","message":"Hello"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()

	newTestRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":7}`, rec.Body.String())
	service.AssertExpectations(t)
}

func TestHandleSubmit_MissingFields(t *testing.T) {
	service := new(mockService)
	service.On("Submit", mock.Anything, "", "", "", "").
		Return(nil, contact.ErrAllFieldsRequired)

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	newTestRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "InvalidRequest")
}

func TestHandleList_RequiresStaff(t *testing.T) {
	service := new(mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	req.Header.Set("X-User-Name", "bob")
	req.Header.Set("X-User-Role", "patient")
	rec := httptest.NewRecorder()

	newTestRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	service.AssertNotCalled(t, "List", mock.Anything)
}

func TestHandleList_StaffSeesMessages(t *testing.T) {
	service := new(mockService)
	service.On("List", mock.Anything).
		Return([]*contact.Message{{ID: 2, FullName: "Ann Smith"}, {ID: 1, FullName: "Bob Jones"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	req.Header.Set("X-User-Name", "root")
	req.Header.Set("X-User-Role", "admin")
	rec := httptest.NewRecorder()

	newTestRouter(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ann Smith")
	service.AssertExpectations(t)
}
