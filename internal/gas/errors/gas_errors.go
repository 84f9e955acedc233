package gaserrors

import (
	"net/http"

	"go-quickgas/internal/shared/apperror"
	"go-quickgas/internal/shared/messages"
)

var (
	ErrGasNotFound = apperror.New(
		apperror.CodeNotFound,
		messages.GasNotFound,
		http.StatusNotFound,
	)
	ErrGasNameExists = apperror.New(
		apperror.CodeConflict,
		messages.GasNameExists,
		http.StatusConflict,
	)
	ErrInvalidGasID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid gas ID",
		http.StatusBadRequest,
	)
)
