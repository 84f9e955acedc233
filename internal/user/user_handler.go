package user

import (
	"net/http"
	"strconv"

	"go-quickgas/internal/shared/apperror"
	"go-quickgas/internal/shared/messages"
	"go-quickgas/internal/shared/response"
	usererrors "go-quickgas/internal/user/errors"

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

func (h *Handler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Message, httpErr.Code)
		return
	}

	u, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "create user failed")
		return
	}

	response.Success(c, http.StatusCreated, u, messages.UserCreated)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := parseUserID(c)
	if err != nil {
		h.writeError(c, err, "invalid user id")
		return
	}

	u, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "get user failed")
		return
	}

	response.Success(c, http.StatusOK, u, messages.UserRetrieved)
}

func (h *Handler) List(c *gin.Context) {
	q := ListUsersQuery{
		Draw:    queryInt(c, "draw", 0),
		Start:   queryInt(c, "start", 0),
		Length:  queryInt(c, "length", 10),
		Search:  c.Query("search"),
		SortBy:  c.Query("sort_by"),
		SortAsc: c.Query("sort_dir") == "asc",
	}

	table, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.writeError(c, err, "list users failed")
		return
	}

	response.Success(c, http.StatusOK, table, messages.UserRetrieved)
}

func (h *Handler) Drivers(c *gin.Context) {
	drivers, err := h.service.Drivers(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "list drivers failed")
		return
	}

	response.Success(c, http.StatusOK, drivers, messages.UserRetrieved)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := parseUserID(c)
	if err != nil {
		h.writeError(c, err, "invalid user id")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Message, httpErr.Code)
		return
	}

	u, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err, "update user failed")
		return
	}

	response.Success(c, http.StatusOK, u, messages.UserUpdated)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := parseUserID(c)
	if err != nil {
		h.writeError(c, err, "invalid user id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "delete user failed")
		return
	}

	response.Success(c, http.StatusOK, nil, messages.UserDeleted)
}

func (h *Handler) writeError(c *gin.Context, err error, logMsg string) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error(logMsg, zap.Error(err))
	} else {
		h.logger.Warn(logMsg, zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Message, httpErr.Code)
}

func parseUserID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, usererrors.ErrInvalidUserID
	}
	return uint(id), nil
}

func queryInt(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return fallback
	}
	return v
}
