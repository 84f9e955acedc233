package usererrors

import (
	"net/http"

	"go-quickgas/internal/shared/apperror"
	"go-quickgas/internal/shared/messages"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		messages.UserNotFound,
		http.StatusNotFound,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		messages.EmailAlreadyExists,
		http.StatusConflict,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)
	ErrInvalidRoleID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid role ID",
		http.StatusBadRequest,
	)
)
