package usererrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"user not found",
		http.StatusNotFound,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
	ErrEmployeeIDTaken = apperror.New(
		apperror.CodeConflict,
		"employee id already exists",
		http.StatusConflict,
	)
	ErrEmailTaken = apperror.New(
		apperror.CodeConflict,
		"email already registered",
		http.StatusConflict,
	)
	ErrInvalidSalary = apperror.New(
		apperror.CodeInvalidInput,
		"invalid salary amount",
		http.StatusBadRequest,
	)
	ErrMissingFile = apperror.New(
		apperror.CodeInvalidInput,
		"profile picture file is required",
		http.StatusBadRequest,
	)
)
