package companyerrors

import (
	"net/http"

	"go-quickgas/internal/shared/apperror"
	"go-quickgas/internal/shared/messages"
)

var (
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		messages.CompanyNotFound,
		http.StatusNotFound,
	)
	ErrCompanyNameExists = apperror.New(
		apperror.CodeConflict,
		messages.CompanyNameExists,
		http.StatusConflict,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)
)
