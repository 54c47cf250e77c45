package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cmlabs-hris/timerecon-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authRequest(t *testing.T, router http.Handler, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reconciliation/monthly/2025-06", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Auth(t *testing.T) {
	jwtService := jwt.NewJWTService("router-test-secret", "1h")
	router := NewRouter(jwtService, NewReconHandler(&fakeReconService{}), "test")

	t.Run("missing token", func(t *testing.T) {
		rec := authRequest(t, router, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := authRequest(t, router, "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid access token", func(t *testing.T) {
		token, expiresAt, err := jwtService.GenerateAccessToken("batch-export")
		require.NoError(t, err)
		assert.Greater(t, expiresAt, time.Now().Unix())

		rec := authRequest(t, router, token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong token type", func(t *testing.T) {
		_, token, err := jwtService.JWTAuth().Encode(map[string]interface{}{
			"sub":  "batch-export",
			"type": "refresh",
			"exp":  time.Now().Add(time.Hour).Unix(),
		})
		require.NoError(t, err)

		rec := authRequest(t, router, token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		_, token, err := jwtService.JWTAuth().Encode(map[string]interface{}{
			"sub":  "batch-export",
			"type": "access",
			"exp":  time.Now().Add(-time.Hour).Unix(),
		})
		require.NoError(t, err)

		rec := authRequest(t, router, token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := jwt.NewJWTService("some-other-secret", "1h")
		token, _, err := other.GenerateAccessToken("batch-export")
		require.NoError(t, err)

		rec := authRequest(t, router, token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("heartbeat stays open", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
