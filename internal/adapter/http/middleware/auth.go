package middleware

import (
	"errors"
	"net/http"
	"strings"

	"teamflow_payments/internal/infrastructure/auth"
	"teamflow_payments/internal/infrastructure/logger"
	"teamflow_payments/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	UserIDKey     = "auth_user_id"
	ClaimsKey     = "auth_claims"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// TokenValidator is satisfied by *auth.JWTService.
type TokenValidator interface {
	ValidateAccessToken(tokenString string) (*auth.Claims, error)
}

// Auth rejects requests without a valid bearer token and stores the caller's
// user id under UserIDKey.
func Auth(validator TokenValidator, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.FromGin(c, log)

		header := c.GetHeader(AuthHeaderKey)
		if header == "" {
			abortUnauthorized(c, reqLog, auth.ErrInvalidToken, "missing authorization header")
			return
		}
		if !strings.HasPrefix(header, BearerPrefix) {
			abortUnauthorized(c, reqLog, auth.ErrInvalidToken, "invalid authorization header format")
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, BearerPrefix))
		if token == "" {
			abortUnauthorized(c, reqLog, auth.ErrInvalidToken, "missing token")
			return
		}

		claims, err := validator.ValidateAccessToken(token)
		if err != nil {
			abortUnauthorized(c, reqLog, err, "token validation failed")
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(UserIDKey, claims.UserID())
		logger.AddFields(c, zap.String("user_id", claims.UserID()))
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, log *zap.Logger, err error, message string) {
	log.Warn("[auth][middleware] authentication failed", zap.String("reason", message), zap.Error(err))

	code, msg := "UNAUTHORIZED", "Authentication required"
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		code, msg = "TOKEN_EXPIRED", "Token has expired"
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrMissingSubject):
		code, msg = "INVALID_TOKEN", "Invalid token"
	case errors.Is(err, auth.ErrTokenNotYetValid):
		code, msg = "TOKEN_NOT_VALID", "Token is not yet valid"
	case errors.Is(err, auth.ErrNotConfigured):
		appErr := pkg.NewDomainError("AUTH_NOT_CONFIGURED", "Authentication is not configured", err, http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	appErr := pkg.NewDomainErrorSimple(code, msg, http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// UserID returns the authenticated user id, or "" outside Auth.
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
