package gas

import (
	"go-quickgas/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	gases := r.Group("/gases")
	gases.Use(middleware.AuthMiddleware())
	{
		gases.POST("", middleware.AdminOnly(), handler.Create)
		gases.GET("", middleware.StaffOnly(), handler.List)
		gases.GET("/all", middleware.StaffOnly(), handler.GetAll)
		gases.GET("/:id", middleware.StaffOnly(), handler.GetByID)
		gases.PUT("/:id", middleware.AdminOnly(), handler.Update)
		gases.DELETE("/:id", middleware.AdminOnly(), handler.Delete)
		gases.DELETE("/permanent/:id", middleware.AdminOnly(), handler.DeletePermanent)
	}
}
