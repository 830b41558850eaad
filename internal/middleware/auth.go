package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-hrms/internal/session"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/response"
)

const SessionCookie = "session_token"

// RequireAuth resolves the opaque session token (cookie or bearer header)
// against the server-side session store and loads the identity into the
// request context. No token or a stale token means 401.
func RequireAuth(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication is required", nil)
			c.Abort()
			return
		}

		sess, err := sessions.Get(c.Request.Context(), token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Session expired or invalid", nil)
			c.Abort()
			return
		}

		c.Set("user_id", sess.UserID)
		c.Set("role", sess.Role)
		c.Set("session_token", token)

		ctx := contextutil.WithUserID(c.Request.Context(), sess.UserID)
		ctx = contextutil.WithRole(ctx, sess.Role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole gates a route to the given roles. It assumes RequireAuth already
// ran; a missing role is treated the same as a wrong one.
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString("role")

		for _, role := range allowedRoles {
			if userRole == role {
				c.Next()
				return
			}
		}

		response.Error(c, http.StatusForbidden, "FORBIDDEN",
			"You do not have permission to access this resource", nil)
		c.Abort()
	}
}

func tokenFromRequest(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if token, found := strings.CutPrefix(authHeader, "Bearer "); found && token != "" {
		return token
	}

	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}
