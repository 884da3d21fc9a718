package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/inventory-catalog/internal/api/middleware"
	"github.com/aaravmahajanofficial/inventory-catalog/internal/testutils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJwtKey = []byte("test-secret-key-123456789012345")

func TestAuthMiddleware(t *testing.T) {
	// Arrange
	authMiddleware := middleware.NewAuthMiddleware(testJwtKey)
	subject := "catalog-admin"

	mockNextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		require.True(t, ok, "claims should be in context")
		assert.Equal(t, subject, claims.Subject)
		assert.Equal(t, testutils.WriteScope, claims.Scope)

		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte(`{"success": true}`))
		require.NoError(t, err)
	})

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success - Valid Token",
			authHeader: func() string {
				token, err := testutils.SignToken(subject, time.Hour, testJwtKey, jwt.SigningMethodHS256)
				require.NoError(t, err)

				return "Bearer " + token
			}(),
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success": true}`,
		},
		{
			name:           "Fail - Missing Authorization Header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message": "Authorization header is required", "url": "/categories"}`,
		},
		{
			name:           "Fail - Invalid Authorization Header Format (No Bearer)",
			authHeader:     "InvalidTokenFormat",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message": "Invalid authorization format", "url": "/categories"}`,
		},
		{
			name:           "Fail - Invalid Authorization Header Format (Only Bearer)",
			authHeader:     "Bearer ",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message": "Invalid authorization format", "url": "/categories"}`,
		},
		{
			name:           "Fail - Invalid Token (Malformed)",
			authHeader:     "Bearer not.a.valid.token",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message": "Invalid token", "url": "/categories"}`,
		},
		{
			name: "Fail - Invalid Token (Wrong Signing Key)",
			authHeader: func() string {
				token, err := testutils.SignToken(subject, time.Hour, []byte("different-secret-key-0987654321"), jwt.SigningMethodHS256)
				require.NoError(t, err)

				return "Bearer " + token
			}(),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message": "Invalid token", "url": "/categories"}`,
		},
		{
			name: "Fail - Invalid Token (Wrong Signing Method)",
			authHeader: func() string {
				token, err := testutils.SignToken(subject, time.Hour, testJwtKey, jwt.SigningMethodHS512)
				require.NoError(t, err)

				return "Bearer " + token
			}(),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message": "Invalid token", "url": "/categories"}`,
		},
		{
			name: "Fail - Expired Token",
			authHeader: func() string {
				token, err := testutils.SignToken(subject, -time.Hour, testJwtKey, jwt.SigningMethodHS256)
				require.NoError(t, err)

				return "Bearer " + token
			}(),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"message": "Token expired", "url": "/categories"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			req := testutils.NewRequest(http.MethodPost, "/categories", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}

			rr := httptest.NewRecorder()

			// Act
			authMiddleware.Authenticate(mockNextHandler).ServeHTTP(rr, req)

			// Assert
			assert.Equal(t, tc.expectedStatus, rr.Code, "Unexpected status code")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Unexpected response body")
		})
	}
}

func TestAuthMiddleware_Disabled(t *testing.T) {
	// Arrange
	authMiddleware := middleware.NewAuthMiddleware(nil)
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodDelete, "/category/1", nil)
	rr := httptest.NewRecorder()

	// Act
	authMiddleware.Authenticate(next).ServeHTTP(rr, req)

	// Assert
	assert.False(t, authMiddleware.Enabled())
	assert.True(t, called, "request should reach the handler without a token")
	assert.Equal(t, http.StatusNoContent, rr.Code)
}
