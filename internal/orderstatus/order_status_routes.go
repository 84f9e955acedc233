package orderstatus

import (
	"go-quickgas/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	statuses := r.Group("/order-statuses")
	statuses.Use(middleware.AuthMiddleware())
	{
		statuses.GET("", middleware.StaffOnly(), handler.List)
	}
}
