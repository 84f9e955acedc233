package dashboard

import (
	"go-quickgas/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	dash := r.Group("/dashboard")
	dash.Use(middleware.AuthMiddleware())
	{
		dash.GET("", middleware.AdminOnly(), handler.Insights)
	}
}
