package user

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/session"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, sessions *session.Store) {
	profile := r.Group("/profile")
	profile.Use(middleware.RequireAuth(sessions))
	{
		profile.GET("", handler.GetProfile)
		profile.PUT("", handler.UpdateProfile)
		profile.POST("/picture", handler.UploadProfilePicture)
	}
}
