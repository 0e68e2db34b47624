package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"celebrationgarden/internal/domain"
)

type fakeAuthService struct {
	token string
	err   error
}

func (f *fakeAuthService) Login(context.Context, string, string) (string, error) {
	return f.token, f.err
}

func TestAuthController_Login(t *testing.T) {
	c := &AuthController{Auth: &fakeAuthService{token: "tok"}, Logger: testLogger}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"admin@example.com","password":"pw"}`))
	rec := httptest.NewRecorder()

	c.Login(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"tok"`)
}

func TestAuthController_Login_BadCredentials(t *testing.T) {
	c := &AuthController{Auth: &fakeAuthService{err: domain.ErrUnauthorized}, Logger: testLogger}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"admin@example.com","password":"wrong"}`))
	rec := httptest.NewRecorder()

	c.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid credentials")
}

func TestAuthController_Login_MissingFields(t *testing.T) {
	c := &AuthController{Auth: &fakeAuthService{}, Logger: testLogger}

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	c.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
