package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/truythudien/truythu-api/internal/application/service"
	"github.com/truythudien/truythu-api/internal/presentation/http/dto/request"
	"github.com/truythudien/truythu-api/internal/presentation/http/dto/response"
)

// CalculationHandler handles saved reconciliation result HTTP requests
type CalculationHandler struct {
	calcService *service.CalculationService
}

// NewCalculationHandler creates a new calculation handler
func NewCalculationHandler(calcService *service.CalculationService) *CalculationHandler {
	return &CalculationHandler{calcService: calcService}
}

// Create saves a reconciliation result owned by the caller
func (h *CalculationHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Chưa đăng nhập hoặc phiên đã hết hạn")
		return
	}

	var req request.SaveCalculationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	id, err := h.calcService.SaveCalculation(c.Request.Context(), &service.SaveCalculationInput{
		UserID:       *userID,
		CustomerName: req.CustomerName,
		CustomerCode: req.CustomerCode,
		TotalDungGia: req.TotalDungGia,
		TotalDaTinh:  req.TotalDaTinh,
		Diff:         req.Diff,
		Details:      req.Details,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Đã lưu kết quả tính toán",
		"id":      id,
	})
}

// List returns the caller's saved results, or every user's for admins,
// newest first
func (h *CalculationHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Chưa đăng nhập hoặc phiên đã hết hạn")
		return
	}

	calcs, err := h.calcService.ListCalculations(c.Request.Context(), *userID, GetUserRole(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, calcs)
}
