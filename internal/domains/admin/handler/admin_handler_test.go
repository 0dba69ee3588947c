package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-catalog-backend/internal/domains/admin"
)

type stubService struct {
	resp *admin.LoginResponse
	err  error
}

func (s *stubService) Login(context.Context, admin.LoginRequest, string) (*admin.LoginResponse, error) {
	return s.resp, s.err
}

func postLogin(svc admin.Service, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/v1/admin/login", NewAdminHandler(svc).Login)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLoginSuccessShape(t *testing.T) {
	id := uuid.New()
	svc := &stubService{resp: &admin.LoginResponse{ID: id, Email: "admin@example.com", Token: "signed.jwt.token"}}

	w := postLogin(svc, `{"email": "admin@example.com", "password": "pw"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token":"signed.jwt.token"`)
	assert.Contains(t, w.Body.String(), id.String())
}

func TestLoginInvalidCredentials(t *testing.T) {
	w := postLogin(&stubService{err: admin.ErrInvalidCredentials},
		`{"email": "admin@example.com", "password": "wrong"}`)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message": "Invalid email or password"}`, w.Body.String())
}

func TestLoginThrottled(t *testing.T) {
	w := postLogin(&stubService{err: admin.ErrTooManyAttempts},
		`{"email": "admin@example.com", "password": "pw"}`)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message": "Too many login attempts, please try again later"}`, w.Body.String())
}

func TestLoginMalformedBody(t *testing.T) {
	w := postLogin(&stubService{}, `{not json`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message": "Invalid request body"}`, w.Body.String())
}
