package orderstatus

import (
	"net/http"

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
	l := zap.L().Named("orderstatus.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("orderstatus.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) List(c *gin.Context) {
	statuses, err := h.service.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list order statuses failed", zap.Error(err))
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Message, httpErr.Code)
		return
	}

	response.Success(c, http.StatusOK, statuses, messages.OrderStatusRetrieved)
}
