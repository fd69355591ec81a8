package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sharenotes/sharenotes-go/internal/apperr"
	"github.com/sharenotes/sharenotes-go/internal/crypto"
	"github.com/sharenotes/sharenotes-go/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type fakeSessions struct {
	err error
}

func (f fakeSessions) CheckSession(context.Context, model.Identity, string) error {
	return f.err
}

func echoIdentity(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, "no identity", http.StatusTeapot)
		return
	}
	token, _ := TokenFromContext(r.Context())
	json.NewEncoder(w).Encode(map[string]any{"user_id": id.UserID, "email": id.Email, "token": token})
}

func serve(t *testing.T, sessions SessionChecker, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	h := RequireAuth(testSecret, sessions)(http.HandlerFunc(echoIdentity))
	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestRequireAuth_ValidToken(t *testing.T) {
	token, err := crypto.GenerateToken(7, "a@x.io", testSecret, time.Hour)
	require.NoError(t, err)

	rec := serve(t, fakeSessions{}, "Bearer "+token)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 7, body["user_id"])
	assert.Equal(t, "a@x.io", body["email"])
	assert.Equal(t, token, body["token"])
}

func TestRequireAuth_Rejections(t *testing.T) {
	valid, err := crypto.GenerateToken(7, "a@x.io", testSecret, time.Hour)
	require.NoError(t, err)
	otherSecret, err := crypto.GenerateToken(7, "a@x.io", "other", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		sessions SessionChecker
		status   int
		message  string
	}{
		{"missing header", "", fakeSessions{}, http.StatusUnauthorized, "Access denied. Token required."},
		{"scheme only", "Bearer", fakeSessions{}, http.StatusUnauthorized, "Access denied. Token required."},
		{"garbage token", "Bearer not-a-jwt", fakeSessions{}, http.StatusUnauthorized, "Invalid token"},
		{"wrong secret", "Bearer " + otherSecret, fakeSessions{}, http.StatusUnauthorized, "Invalid token"},
		{"revoked session", "Bearer " + valid, fakeSessions{err: apperr.New(apperr.Unauthorized, "Invalid token")}, http.StatusUnauthorized, "Invalid token"},
		{"store failure", "Bearer " + valid, fakeSessions{err: errors.New("db down")}, http.StatusInternalServerError, "Something went wrong!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, tt.sessions, tt.header)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.message, errorBody(t, rec))
		})
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header, want string
	}{
		{"", ""},
		{"Bearer", ""},
		{"Bearer abc", "abc"},
		{"Token abc", "abc"},
		{"Bearer  abc", ""},
	}
	for _, tt := range tests {
		if got := bearerToken(tt.header); got != tt.want {
			t.Errorf("bearerToken(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func TestIdentityFromContext_Missing(t *testing.T) {
	if _, ok := IdentityFromContext(context.Background()); ok {
		t.Error("IdentityFromContext() ok = true on empty context, want false")
	}
	if _, ok := TokenFromContext(context.Background()); ok {
		t.Error("TokenFromContext() ok = true on empty context, want false")
	}
}
