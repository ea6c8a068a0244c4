package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/truythudien/truythu-api/internal/application/service"
	"github.com/truythudien/truythu-api/internal/presentation/http/dto/request"
	"github.com/truythudien/truythu-api/internal/presentation/http/dto/response"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a user with username and password
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Thiếu tên đăng nhập hoặc mật khẩu")
		return
	}

	output, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":        output.AccessToken,
		"refreshToken": output.RefreshToken,
		"role":         output.User.Role,
		"username":     output.User.Username,
	})
}

// RefreshToken rotates the token pair from a valid refresh token
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req request.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Thiếu refresh token")
		return
	}

	output, err := h.authService.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":        output.AccessToken,
		"refreshToken": output.RefreshToken,
		"role":         output.User.Role,
		"username":     output.User.Username,
	})
}
