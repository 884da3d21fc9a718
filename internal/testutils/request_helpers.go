package testutils

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/aaravmahajanofficial/inventory-catalog/internal/logging"
	"github.com/aaravmahajanofficial/inventory-catalog/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// WriteScope is the scope carried by tokens issued for catalog editors.
const WriteScope = "catalog:write"

// NewRequest builds a request whose context carries a discarding logger, as
// the logging middleware would provide.
func NewRequest(method, target string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := logging.WithLogger(req.Context(), logger)

	return req.WithContext(ctx)
}

// SignToken issues a WriteScope token for subject that expires after ttl.
// A negative ttl yields an already expired token.
func SignToken(subject string, ttl time.Duration, key []byte, method jwt.SigningMethod) (string, error) {
	claims := &models.Claims{
		Scope: WriteScope,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}

	return jwt.NewWithClaims(method, claims).SignedString(key)
}
