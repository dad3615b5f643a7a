package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booklist/internal/auth"
	"booklist/internal/storage"
	"booklist/internal/testutil"
)

func newHandler() *auth.HTTPHandler {
	return auth.NewHTTPHandler(auth.NewService(testutil.Secret, storage.NewMemoryStore()))
}

func TestRegister(t *testing.T) {
	handler := newHandler()

	w := httptest.NewRecorder()
	r := testutil.NewRequest(http.MethodPost, "/api/register", map[string]string{
		"username": "alice",
		"email":    "a@x.com",
		"password": "pw123",
	})
	handler.Register(w, r)

	resp := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Equal(t, true, resp.Body["success"])
	assert.Equal(t, "User registered successfully", resp.Body["message"])

	user, ok := resp.Body["user"].(map[string]any)
	require.True(t, ok, "expected user object in response")
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, "a@x.com", user["email"])
	assert.NotEmpty(t, user["id"])
	assert.NotContains(t, user, "password")
}

func TestRegister_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body map[string]string
	}{
		{"no username", map[string]string{"email": "a@x.com", "password": "pw123"}},
		{"no email", map[string]string{"username": "alice", "password": "pw123"}},
		{"no password", map[string]string{"username": "alice", "email": "a@x.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newHandler()
			w := httptest.NewRecorder()
			handler.Register(w, testutil.NewRequest(http.MethodPost, "/api/register", tt.body))

			resp := testutil.RecordHTTPResponse(w)
			assert.Equal(t, http.StatusBadRequest, resp.Code)
			assert.Equal(t, "Username, email, and password are required", resp.Body["error"])
		})
	}
}

func TestRegister_Duplicate(t *testing.T) {
	handler := newHandler()
	body := map[string]string{"username": "alice", "email": "a@x.com", "password": "pw123"}

	w := httptest.NewRecorder()
	handler.Register(w, testutil.NewRequest(http.MethodPost, "/api/register", body))
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	handler.Register(w, testutil.NewRequest(http.MethodPost, "/api/register", body))

	resp := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "User already exists", resp.Body["error"])
}

func TestLogin(t *testing.T) {
	handler := newHandler()

	w := httptest.NewRecorder()
	handler.Register(w, testutil.NewRequest(http.MethodPost, "/api/register", map[string]string{
		"username": "alice", "email": "a@x.com", "password": "pw123",
	}))
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	handler.Login(w, testutil.NewRequest(http.MethodPost, "/api/login", map[string]string{
		"username": "alice", "password": "pw123",
	}))

	resp := testutil.RecordHTTPResponse(w)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, true, resp.Body["success"])
	assert.Equal(t, "Login successful", resp.Body["message"])
	assert.NotEmpty(t, resp.Body["token"])

	token, _ := resp.Body["token"].(string)
	claims, err := auth.ParseToken(testutil.Secret, token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
}

func TestLogin_BadCredentials(t *testing.T) {
	handler := newHandler()

	w := httptest.NewRecorder()
	handler.Register(w, testutil.NewRequest(http.MethodPost, "/api/register", map[string]string{
		"username": "alice", "email": "a@x.com", "password": "pw123",
	}))
	require.Equal(t, http.StatusCreated, w.Code)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"wrong password", map[string]string{"username": "alice", "password": "wrong"}},
		{"unknown user", map[string]string{"username": "mallory", "password": "pw123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.Login(w, testutil.NewRequest(http.MethodPost, "/api/login", tt.body))

			resp := testutil.RecordHTTPResponse(w)
			assert.Equal(t, http.StatusUnauthorized, resp.Code)
			// same message either way, so probes cannot tell a bad
			// password from an unknown username
			assert.Equal(t, "Invalid credentials", resp.Body["error"])
		})
	}
}

func TestLogin_MissingFields(t *testing.T) {
	handler := newHandler()

	w := httptest.NewRecorder()
	handler.Login(w, testutil.NewRequest(http.MethodPost, "/api/login", map[string]string{
		"username": "alice",
	}))

	resp := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "Username and password are required", resp.Body["error"])
}
