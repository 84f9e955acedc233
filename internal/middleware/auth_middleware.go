package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	autherrors "go-quickgas/internal/auth/errors"
	"go-quickgas/internal/domain"
	"go-quickgas/internal/shared/messages"
	"go-quickgas/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextUserID = "user_id"
	ContextRoleID = "role_id"
	ContextEmail  = "email"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, messages.Unauthorized, "token not found")
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if err != nil && strings.Contains(err.Error(), "expired") {
				errObj = autherrors.ErrTokenExpired
			}
			response.Error(c, errObj.HTTPStatus, errObj.Message, errObj.Code)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, messages.InvalidToken, "invalid token claims")
			c.Abort()
			return
		}

		userID, ok := claims["user_id"].(float64)
		if !ok || userID <= 0 {
			response.Error(c, http.StatusUnauthorized, messages.InvalidToken, "user id not found in token")
			c.Abort()
			return
		}

		roleID, ok := claims["role_id"].(float64)
		if !ok || !domain.RoleID(roleID).Valid() {
			response.Error(c, http.StatusUnauthorized, messages.InvalidToken, "role id not found in token")
			c.Abort()
			return
		}

		email, _ := claims["email"].(string)

		c.Set(ContextUserID, uint(userID))
		c.Set(ContextRoleID, domain.RoleID(roleID))
		c.Set(ContextEmail, email)

		c.Next()
	}
}

// Actor rebuilds the verified caller identity set by AuthMiddleware. Handlers
// hand it to services explicitly.
func Actor(c *gin.Context) domain.Actor {
	actor := domain.Actor{}
	if v, ok := c.Get(ContextUserID); ok {
		if id, ok := v.(uint); ok {
			actor.UserID = id
		}
	}
	if v, ok := c.Get(ContextRoleID); ok {
		if r, ok := v.(domain.RoleID); ok {
			actor.Role = r
		}
	}
	return actor
}

// RequireRoles gates a route on explicit role membership.
func RequireRoles(allowed ...domain.RoleID) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get(ContextRoleID)
		if !exists {
			response.Error(c, http.StatusForbidden, messages.Forbidden, "missing auth context")
			c.Abort()
			return
		}

		role, _ := v.(domain.RoleID)
		for _, r := range allowed {
			if role == r {
				c.Next()
				return
			}
		}

		response.Error(c, http.StatusForbidden, messages.Forbidden, "role not permitted")
		c.Abort()
	}
}

// AdminOnly allows only administrators.
func AdminOnly() gin.HandlerFunc {
	return RequireRoles(domain.RoleAdmin)
}

// StaffOnly allows the staff tier: admin, dispatcher, driver.
func StaffOnly() gin.HandlerFunc {
	return RequireRoles(domain.RoleAdmin, domain.RoleDispatcher, domain.RoleDriver)
}
