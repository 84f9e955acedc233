package company

import (
	"go-quickgas/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	companies := r.Group("/companies")
	companies.Use(middleware.AuthMiddleware())
	{
		companies.POST("", middleware.AdminOnly(), handler.Create)
		companies.GET("", middleware.StaffOnly(), handler.List)
		companies.GET("/all", middleware.StaffOnly(), handler.GetAll)
		companies.GET("/:id", middleware.StaffOnly(), handler.GetByID)
		companies.PUT("/:id", middleware.AdminOnly(), handler.Update)
		companies.DELETE("/:id", middleware.AdminOnly(), handler.Delete)
		companies.DELETE("/permanent/:id", middleware.AdminOnly(), handler.DeletePermanent)
	}
}
