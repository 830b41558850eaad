package leave

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/session"
	"go-hrms/internal/user"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, sessions *session.Store) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.RequireAuth(sessions))
	{
		leaves.GET("", handler.List)
		leaves.POST("", handler.Submit)
		leaves.POST("/:id/decision", middleware.RequireRole(user.RoleHR), handler.Decide)
	}
}
