package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-service/pkg/jwtutil"
)

func newTestMiddleware(t *testing.T) (*jwtutil.Generator, *AuthMiddleware) {
	t.Helper()
	secret := []byte("mw-secret")
	gen := jwtutil.NewGenerator(secret, "todo-service", "todo-api", time.Hour)
	ver := jwtutil.NewVerifier(secret, "todo-service", "todo-api")
	return gen, NewAuthMiddleware(ver)
}

func echoUserID() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := GetUserID(r.Context())
		_ = json.NewEncoder(w).Encode(map[string]string{"user_id": userID})
	})
}

func TestRequire_NoToken(t *testing.T) {
	_, am := newTestMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	am.Require()(echoUserID()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequire_InvalidToken(t *testing.T) {
	_, am := newTestMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	am.Require()(echoUserID()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequire_ExpiredToken(t *testing.T) {
	secret := []byte("mw-secret")
	gen := jwtutil.NewGenerator(secret, "todo-service", "todo-api", -time.Minute)
	am := NewAuthMiddleware(jwtutil.NewVerifier(secret, "todo-service", "todo-api"))

	tok, _, err := gen.Generate("u1", "")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	am.Require()(echoUserID()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "expired")
}

func TestRequire_ValidBearerToken(t *testing.T) {
	gen, am := newTestMiddleware(t)

	tok, _, err := gen.Generate("user-42", "a@b.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	am.Require()(echoUserID()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "user-42", body["user_id"])
}

func TestRequire_TokenFromCookie(t *testing.T) {
	gen, am := newTestMiddleware(t)

	tok, _, err := gen.Generate("user-7", "")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: tok})
	rec := httptest.NewRecorder()
	am.Require()(echoUserID()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequire_TokenFromQuery(t *testing.T) {
	gen, am := newTestMiddleware(t)

	tok, _, err := gen.Generate("user-9", "")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/?token="+tok, nil)
	rec := httptest.NewRecorder()
	am.Require()(echoUserID()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
