package request

import "github.com/truythudien/truythu-api/internal/domain/entity"

// SaveCalculationRequest represents one reconciliation result to save.
// Details is the full computed breakdown; its structure belongs to the
// client and is stored as-is.
type SaveCalculationRequest struct {
	CustomerName string      `json:"customerName"`
	CustomerCode string      `json:"customerCode"`
	TotalDungGia float64     `json:"totalDungGia"`
	TotalDaTinh  float64     `json:"totalDaTinh"`
	Diff         float64     `json:"diff"`
	Details      entity.JSON `json:"details"`
}
