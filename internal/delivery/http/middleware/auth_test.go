package middleware

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeVerifier struct {
	subject string
	err     error
}

func (f fakeVerifier) Verify(string) (string, error) { return f.subject, f.err }

func TestRequireAuth_PassesSubject(t *testing.T) {
	var gotSubject string
	handler := RequireAuth(fakeVerifier{subject: "admin"}, testLogger)(func(w http.ResponseWriter, r *http.Request) {
		gotSubject, _ = SubjectFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/invitations", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()

	handler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", gotSubject)
}

func TestRequireAuth_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		verifier fakeVerifier
	}{
		{"missing header", "", fakeVerifier{subject: "admin"}},
		{"not bearer", "Basic abc", fakeVerifier{subject: "admin"}},
		{"empty token", "Bearer ", fakeVerifier{subject: "admin"}},
		{"rejected token", "Bearer bad", fakeVerifier{err: errors.New("expired")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := RequireAuth(tt.verifier, testLogger)(func(w http.ResponseWriter, r *http.Request) {
				called = true
			})

			req := httptest.NewRequest(http.MethodGet, "/api/invitations", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, called)
		})
	}
}
