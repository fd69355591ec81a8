package handler

import (
	"net/http"
	"strings"
	"testing"

	"github.com/sharenotes/sharenotes-go/internal/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterLogin_TokenCarriesIdentity(t *testing.T) {
	api := newTestAPI(t)
	userID, token := api.signup("Alice", "a@x.io", "pw")

	claims, err := crypto.ValidateToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "a@x.io", claims.Email)
}

func TestRegister_Validation(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/auth/register", "", map[string]string{"email": "a@x.io", "password": "pw"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Name, email and password are required", errorMessage(t, rec))
}

func TestRegister_LongPassword(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodPost, "/auth/register", "", map[string]string{
		"name": "Alice", "email": "a@x.io", "password": strings.Repeat("p", 80),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Password must be at most 72 bytes", errorMessage(t, rec))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	api := newTestAPI(t)
	api.signup("Alice", "a@x.io", "pw")

	rec := api.do(http.MethodPost, "/auth/register", "", map[string]string{
		"name": "Alice", "email": "a@x.io", "password": "pw",
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Something went wrong!", errorMessage(t, rec))
}

func TestLogin_Failures(t *testing.T) {
	api := newTestAPI(t)
	api.signup("Alice", "a@x.io", "pw")

	tests := []struct {
		name     string
		email    string
		password string
		message  string
	}{
		{"wrong password", "a@x.io", "nope", "Invalid password"},
		{"unknown email", "nobody@x.io", "pw", "User not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.do(http.MethodPost, "/auth/login", "", map[string]string{
				"email": tt.email, "password": tt.password,
			})
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.message, errorMessage(t, rec))
		})
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	api := newTestAPI(t)

	routes := []struct{ method, path string }{
		{http.MethodPost, "/auth/logout"},
		{http.MethodGet, "/notes"},
		{http.MethodPost, "/notes"},
		{http.MethodGet, "/notes/1"},
		{http.MethodPut, "/notes/1"},
		{http.MethodDelete, "/notes/1"},
		{http.MethodGet, "/notes/share"},
		{http.MethodPost, "/notes/share/1"},
		{http.MethodDelete, "/notes/share/1/1"},
	}
	for _, rt := range routes {
		rec := api.do(rt.method, rt.path, "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s status = %d, want 401", rt.method, rt.path, rec.Code)
			continue
		}
		if got := errorMessage(t, rec); got != "Access denied. Token required." {
			t.Errorf("%s %s error = %q", rt.method, rt.path, got)
		}
	}

	rec := api.do(http.MethodGet, "/notes", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token", errorMessage(t, rec))
}

func TestLogout_RevokesToken(t *testing.T) {
	api := newTestAPI(t)
	_, token := api.signup("Alice", "a@x.io", "pw")

	rec := api.do(http.MethodGet, "/notes", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(http.MethodPost, "/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Successfully logged out", decode[map[string]string](t, rec)["message"])

	rec = api.do(http.MethodGet, "/notes", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token", errorMessage(t, rec))
}
