package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClaims struct {
	id uuid.UUID
}

func (c fakeClaims) GetUserID() uuid.UUID { return c.id }

type fakeValidator struct {
	id    uuid.UUID
	valid string
}

func (v fakeValidator) ValidateToken(tokenString string) (UserIDGetter, error) {
	if tokenString != v.valid {
		return nil, fmt.Errorf("invalid token")
	}
	return fakeClaims{id: v.id}, nil
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	mw := Auth(fakeValidator{id: userID, valid: "good-token"})

	var gotID uuid.UUID
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := GetUserID(r)
		require.NoError(t, err)
		gotID = id
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("valid bearer token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/jobs", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, userID, gotID)
	})

	t.Run("case-insensitive scheme", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/jobs", nil)
		req.Header.Set("Authorization", "bearer good-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/jobs", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/jobs", nil)
		req.Header.Set("Authorization", "good-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/jobs", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestGetUserIDWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest("GET", "/jobs", nil)
	_, err := GetUserID(req)
	assert.Error(t, err)
}
