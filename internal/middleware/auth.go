package middleware

import (
	"strings"

	"hire_assess_backend/internal/config"
	"hire_assess_backend/internal/model"
	"hire_assess_backend/internal/util"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// RoleMiddleware gates a route group to the given user types.
// Administrators pass every gate.
func RoleMiddleware(types ...model.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		allowed := false
		for _, t := range types {
			if user.UserType == model.Administrator {
				allowed = true
				break
			}
			if user.UserType == t {
				allowed = true
				break
			}
		}

		if !allowed {
			util.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
