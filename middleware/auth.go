package middleware

import (
	"campusrent/response"
	"campusrent/services"

	"github.com/gin-gonic/gin"
)

const UserIDKey = "userID"

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		userID, err := services.GetUserIDFromToken(authHeader, secret)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// OptionalAuth sets the user id when a valid token is present and lets
// anonymous requests through.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			if userID, err := services.GetUserIDFromToken(authHeader, secret); err == nil {
				c.Set(UserIDKey, userID)
			}
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated user id, or "" for anonymous requests.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
