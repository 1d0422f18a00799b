package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookline/gateway/internal/infrastructure/auth"
	"github.com/bookline/gateway/internal/pkg/httputil"
)

const (
	UserIDKey      = "user_id"
	AccessTokenKey = "access_token"

	accessTokenCookie = "access_token"
)

type AuthMiddleware struct {
	jwtSvc *auth.JWTService
}

func NewAuthMiddleware(jwtSvc *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtSvc: jwtSvc}
}

// RequireSession validates the access_token cookie issued by the upstream
// identity service and stashes both the user id and the raw token, which
// outbound backend calls re-attach as a cookie.
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(accessTokenCookie)
		if err != nil || token == "" {
			httputil.Error(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}

		userID, err := m.jwtSvc.ValidateAccessToken(token)
		if err != nil {
			httputil.Error(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Set(AccessTokenKey, token)
		c.Next()
	}
}

// GetAccessToken returns the raw session token stored by RequireSession.
func GetAccessToken(c *gin.Context) string {
	if token, exists := c.Get(AccessTokenKey); exists {
		return token.(string)
	}
	return ""
}
