package order

import (
	"go-quickgas/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	orders := r.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.POST("", middleware.AdminOnly(), middleware.Idempotency(rdb), handler.Create)
		orders.GET("", middleware.StaffOnly(), handler.List)
		orders.GET("/:id", middleware.StaffOnly(), handler.GetByID)
		orders.PUT("/:id", middleware.StaffOnly(), handler.Update)
		orders.DELETE("/:id", middleware.AdminOnly(), handler.Delete)
	}

	items := r.Group("/order-items")
	items.Use(middleware.AuthMiddleware())
	{
		items.POST("", middleware.AdminOnly(), handler.AddItem)
		items.GET("/order/:id", middleware.StaffOnly(), handler.ItemsByOrder)
		items.PUT("/:id", middleware.StaffOnly(), handler.UpdateItem)
		items.DELETE("/:id", middleware.AdminOnly(), handler.DeleteItem)
	}
}
