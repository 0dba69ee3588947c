package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"book-catalog-backend/pkg/jwt"
)

// AuthMiddleware verifies the Bearer token on protected routes.
// Missing, malformed, badly signed and expired tokens all map to 401.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	manager := jwt.NewManager(jwtSecret)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(401, gin.H{"message": "Not authorized, no token"})
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(401, gin.H{"message": "Not authorized, token failed"})
			c.Abort()
			return
		}

		claims, err := manager.ValidateToken(parts[1])
		if err != nil {
			c.JSON(401, gin.H{"message": "Not authorized, token failed"})
			c.Abort()
			return
		}

		adminID, err := uuid.Parse(claims.AdminID)
		if err != nil {
			c.JSON(401, gin.H{"message": "Not authorized, token failed"})
			c.Abort()
			return
		}

		c.Set("adminID", adminID)
		c.Set("adminEmail", claims.Email)

		c.Next()
	}
}
