package dashboard

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/session"
	"go-hrms/internal/user"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, sessions *session.Store) {
	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.RequireAuth(sessions))
	{
		dashboard.GET("/employee", handler.Employee)
		dashboard.GET("/admin", middleware.RequireRole(user.RoleHR), handler.Admin)
	}
}
