package user

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/response"
	usererrors "go-hrms/internal/user/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("user.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("profile request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetProfile(c *gin.Context) {
	actorID := c.GetString("user_id")
	actorRole := c.GetString("role")

	resp, err := h.service.GetProfile(c.Request.Context(), actorID, actorRole, c.Query("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	actorID := c.GetString("user_id")
	actorRole := c.GetString("role")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.UpdateProfile(c.Request.Context(), actorID, actorRole, c.Query("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UploadProfilePicture(c *gin.Context) {
	actorID := c.GetString("user_id")

	fileHeader, err := c.FormFile("profile_picture")
	if err != nil {
		h.writeServiceError(c, usererrors.ErrMissingFile)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.writeServiceError(c, usererrors.ErrMissingFile)
		return
	}
	defer file.Close()

	resp, err := h.service.UpdateProfilePicture(c.Request.Context(), actorID, fileHeader.Filename, file)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
