package autherrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"invalid email or password",
		http.StatusUnauthorized,
	)
	ErrPasswordMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"passwords do not match",
		http.StatusBadRequest,
	)
)
