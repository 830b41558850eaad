package payroll

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/session"
	"go-hrms/internal/user"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, sessions *session.Store) {
	payroll := r.Group("/payroll")
	payroll.Use(middleware.RequireAuth(sessions))
	{
		payroll.GET("", handler.List)
		payroll.PUT("/:employee_id", middleware.RequireRole(user.RoleHR), handler.UpdateSalary)
	}
}
