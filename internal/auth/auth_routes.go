package auth

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/session"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, sessions *session.Store) {
	auth := r.Group("/auth")
	{
		// Credential endpoints get a tight per-IP budget to slow down
		// guessing.
		auth.POST("/register", middleware.RateLimitByIP(rate.Limit(1), 5), handler.Register)
		auth.POST("/login", middleware.RateLimitByIP(rate.Limit(1), 5), handler.Login)

		auth.POST("/logout", middleware.RequireAuth(sessions), handler.Logout)
		auth.GET("/me", middleware.RequireAuth(sessions), handler.Me)
	}
}
