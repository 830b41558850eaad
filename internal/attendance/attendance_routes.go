package attendance

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/session"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, sessions *session.Store) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.RequireAuth(sessions))
	{
		attendances.GET("", handler.List)
		attendances.POST("/check-in", handler.CheckIn)
		attendances.POST("/check-out", handler.CheckOut)
	}
}
