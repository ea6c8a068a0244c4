package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/truythudien/truythu-api/internal/application/service"
	"github.com/truythudien/truythu-api/internal/presentation/http/dto/request"
	"github.com/truythudien/truythu-api/internal/presentation/http/dto/response"
)

// PriceHandler handles tariff configuration HTTP requests
type PriceHandler struct {
	priceService *service.PriceService
}

// NewPriceHandler creates a new price handler
func NewPriceHandler(priceService *service.PriceService) *PriceHandler {
	return &PriceHandler{priceService: priceService}
}

// GetPrices serves the active tariff table. Public, and never fails:
// the service falls back to the built-in defaults.
func (h *PriceHandler) GetPrices(c *gin.Context) {
	prices := h.priceService.GetActivePrices(c.Request.Context())
	c.JSON(http.StatusOK, prices)
}

// UpdatePrices replaces the tariff table. Admin only.
func (h *PriceHandler) UpdatePrices(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Chưa đăng nhập hoặc phiên đã hết hạn")
		return
	}

	var req request.UpdatePricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Thiếu dữ liệu bảng giá cần lưu")
		return
	}

	currentPeriod, err := h.priceService.SetActivePrices(c.Request.Context(), &service.SetActivePricesInput{
		Periods:       req.Periods,
		Prices:        req.Prices,
		CurrentPeriod: req.CurrentPeriod,
		UpdatedBy:     *userID,
		Role:          GetUserRole(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Đã lưu bảng giá điện",
		"currentPeriod": currentPeriod,
	})
}
