package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	appErrors "github.com/aaravmahajanofficial/inventory-catalog/internal/errors"
	"github.com/aaravmahajanofficial/inventory-catalog/internal/logging"
	"github.com/aaravmahajanofficial/inventory-catalog/internal/models"
	"github.com/aaravmahajanofficial/inventory-catalog/internal/utils/response"
	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const ClaimsContextKey = contextKey("claims")

type AuthMiddleware struct {
	jwtKey []byte
}

// NewAuthMiddleware returns bearer token auth keyed by jwtKey. With an empty key
// every request passes through unauthenticated.
func NewAuthMiddleware(jwtKey []byte) *AuthMiddleware {
	return &AuthMiddleware{jwtKey: jwtKey}
}

func (m *AuthMiddleware) Enabled() bool {
	return len(m.jwtKey) > 0
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.HandlerFunc {
	if !m.Enabled() {
		return next.ServeHTTP
	}

	return func(w http.ResponseWriter, r *http.Request) {
		logger := logging.FromContext(r.Context())

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			logger.Warn("Missing authorization header")
			response.Error(w, r, appErrors.UnauthorizedError("Authorization header is required"))
			return
		}

		// Bearer <token>
		scheme, tokenString, ok := strings.Cut(authHeader, " ")
		if !ok || scheme != "Bearer" || tokenString == "" {
			logger.Warn("Invalid authorization header format")
			response.Error(w, r, appErrors.UnauthorizedError("Invalid authorization format"))
			return
		}

		claims := &models.Claims{}

		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				logger.Error("Unexpected signing method used in JWT", slog.Any("alg", t.Header["alg"]))
				return nil, errors.New("unexpected signing method")
			}
			return m.jwtKey, nil
		}, jwt.WithExpirationRequired(), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

		if err != nil || !token.Valid {
			message := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				message = "Token expired"
			}

			logger.Warn("JWT validation failed", slog.Any("error", err))
			response.Error(w, r, appErrors.UnauthorizedError(message))
			return
		}

		requestLogger := logger.With(slog.String("subject", claims.Subject))
		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		ctx = logging.WithLogger(ctx, requestLogger)

		requestLogger.Info("Request authenticated")

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func ClaimsFromContext(ctx context.Context) (*models.Claims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*models.Claims)
	return claims, ok
}
