package middleware

import (
	"net/http"
	"strings"

	"stash/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// UserIDKey is the echo.Context key under which Authenticate stores the
// verified user id. Handlers read it with GetUserID.
const UserIDKey = "userID"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and injects the subject's user
// id into the request context. The token is the sole authorization
// credential; nothing from the request body is trusted for identity.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		c.Set(UserIDKey, claims.UserID)

		return next(c)
	}
}

// GetUserID extracts the authenticated user id set by Authenticate.
func GetUserID(c echo.Context) (int64, bool) {
	userID, ok := c.Get(UserIDKey).(int64)

	return userID, ok
}
