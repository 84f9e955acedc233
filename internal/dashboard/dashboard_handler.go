package dashboard

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
	l := zap.L().Named("dashboard.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Insights(c *gin.Context) {
	insights, err := h.service.Insights(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Error("fetch insights failed", zap.Error(err))
		response.Error(c, httpErr.Status, httpErr.Message, httpErr.Code)
		return
	}

	response.Success(c, http.StatusOK, insights, messages.InsightsFetched)
}
