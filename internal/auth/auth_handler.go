package auth

import (
	"net/http"

	"go-quickgas/internal/middleware"
	"go-quickgas/internal/shared/apperror"
	"go-quickgas/internal/shared/messages"
	"go-quickgas/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Message, httpErr.Code)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "login failed")
		return
	}

	response.Success(c, http.StatusOK, resp, messages.LoginSuccessful)
}

func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Message, httpErr.Code)
		return
	}

	resp, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "signup failed")
		return
	}

	response.Success(c, http.StatusCreated, resp, messages.SignupSuccessful)
}

func (h *Handler) Me(c *gin.Context) {
	me, err := h.service.Me(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		h.writeError(c, err, "resolve current user failed")
		return
	}

	response.Success(c, http.StatusOK, me, messages.UserRetrieved)
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
