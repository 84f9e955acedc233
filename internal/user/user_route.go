package user

import (
	"go-quickgas/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.POST("", middleware.AdminOnly(), handler.Create)
		users.GET("", middleware.AdminOnly(), handler.List)
		users.GET("/all", middleware.AdminOnly(), handler.List)
		users.GET("/drivers", middleware.StaffOnly(), handler.Drivers)
		users.GET("/:id", middleware.AdminOnly(), handler.GetByID)
		users.PUT("/:id", middleware.AdminOnly(), handler.Update)
		users.DELETE("/:id", middleware.AdminOnly(), handler.Delete)
	}
}
