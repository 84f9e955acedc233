package ordererrors

import (
	"net/http"

	"go-quickgas/internal/shared/apperror"
	"go-quickgas/internal/shared/messages"
)

var (
	ErrOrderNotFound = apperror.New(
		apperror.CodeNotFound,
		messages.OrderNotFound,
		http.StatusNotFound,
	)
	ErrOrderItemNotFound = apperror.New(
		apperror.CodeNotFound,
		messages.OrderItemNotFound,
		http.StatusNotFound,
	)
	ErrStatusNotFound = apperror.New(
		apperror.CodeNotFound,
		messages.StatusNotFound,
		http.StatusNotFound,
	)
	ErrMinimumItemRequired = apperror.New(
		apperror.CodeInvalidInput,
		messages.MinimumItemRequired,
		http.StatusBadRequest,
	)
	ErrInvalidQuantity = apperror.New(
		apperror.CodeInvalidInput,
		messages.InvalidQuantity,
		http.StatusBadRequest,
	)
	ErrAreaRequired = apperror.New(
		apperror.CodeInvalidInput,
		messages.AreaRequired,
		http.StatusBadRequest,
	)
	ErrNotAdmin = apperror.New(
		apperror.CodeForbidden,
		messages.NotAdmin,
		http.StatusForbidden,
	)
	ErrNotDriver = apperror.New(
		apperror.CodeInvalidInput,
		messages.NotDriver,
		http.StatusBadRequest,
	)
	ErrInvalidOrderID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid order ID",
		http.StatusBadRequest,
	)
	ErrInvalidOrderItemID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid order item ID",
		http.StatusBadRequest,
	)
)
