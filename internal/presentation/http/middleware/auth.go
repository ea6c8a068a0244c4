package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/truythudien/truythu-api/internal/domain/enum"
	"github.com/truythudien/truythu-api/internal/domain/policy"
	"github.com/truythudien/truythu-api/internal/presentation/http/dto/response"
	"github.com/truythudien/truythu-api/pkg/utils"
)

// AuthMiddleware creates a JWT authentication middleware
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Chưa đăng nhập hoặc phiên đã hết hạn")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Token không hợp lệ")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Token không hợp lệ hoặc đã hết hạn")
			c.Abort()
			return
		}

		// Set user info in context
		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("user_role", claims.Role)

		c.Next()
	}
}

// RequireOperation rejects authenticated callers whose role the access
// policy does not allow to perform op
func RequireOperation(op policy.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("user_role")
		if !exists {
			response.Forbidden(c, "Bạn không có quyền thực hiện thao tác này")
			c.Abort()
			return
		}

		role, ok := roleVal.(enum.Role)
		if !ok || !policy.Allowed(role, op) {
			response.Forbidden(c, "Bạn không có quyền thực hiện thao tác này")
			c.Abort()
			return
		}

		c.Next()
	}
}
