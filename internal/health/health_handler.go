// Package health exposes the liveness probe.
package health

import (
	"net/http"

	"go-quickgas/internal/shared/messages"
	"go-quickgas/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Ping(c *gin.Context) {
	response.Success(c, http.StatusOK, nil, messages.HealthOK)
}
