package auth

import (
	"go-quickgas/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	authGroup := r.Group("/auth")
	{
		// brute-force protection on credential endpoints
		authGroup.POST("/login", middleware.RateLimitByIP(1, 5), handler.Login)
		authGroup.POST("/signup", middleware.RateLimitByIP(0.5, 3), handler.Signup)

		authGroup.GET("/me",
			middleware.AuthMiddleware(),
			middleware.RateLimitByUser(2, 10),
			handler.Me,
		)
	}
}
