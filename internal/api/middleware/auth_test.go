package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	adminID int64
	err     error
	gotTok  string
}

func (s *stubVerifier) VerifyToken(tokenString string) (int64, error) {
	s.gotTok = tokenString
	return s.adminID, s.err
}

func TestAuth(t *testing.T) {
	newHandler := func(captured *int64, ok *bool) http.Handler {
		return Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*captured, *ok = GetUserID(r.Context())
			w.WriteHeader(http.StatusOK)
		}))
	}

	t.Run("valid header puts user id into context", func(t *testing.T) {
		var userID int64
		var ok bool

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-User-ID", "42")
		rec := httptest.NewRecorder()

		newHandler(&userID, &ok).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.True(t, ok)
		assert.Equal(t, int64(42), userID)
	})

	t.Run("missing header", func(t *testing.T) {
		var userID int64
		var ok bool

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		newHandler(&userID, &ok).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-numeric header", func(t *testing.T) {
		var userID int64
		var ok bool

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-User-ID", "abc")
		rec := httptest.NewRecorder()

		newHandler(&userID, &ok).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-positive id", func(t *testing.T) {
		var userID int64
		var ok bool

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-User-ID", "0")
		rec := httptest.NewRecorder()

		newHandler(&userID, &ok).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAdminAuth(t *testing.T) {
	t.Run("valid bearer token puts admin id into context", func(t *testing.T) {
		verifier := &stubVerifier{adminID: 5}

		var adminID int64
		var ok bool
		handler := AdminAuth(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			adminID, ok = GetAdminID(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer token-123")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.True(t, ok)
		assert.Equal(t, int64(5), adminID)
		assert.Equal(t, "token-123", verifier.gotTok)
	})

	t.Run("missing authorization header", func(t *testing.T) {
		handler := AdminAuth(&stubVerifier{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not be called")
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		handler := AdminAuth(&stubVerifier{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not be called")
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		verifier := &stubVerifier{err: errors.New("token expired")}
		handler := AdminAuth(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not be called")
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer expired")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
