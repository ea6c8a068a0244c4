package request

import "github.com/truythudien/truythu-api/internal/domain/entity"

// UpdatePricesRequest carries a full replacement tariff table. Field
// validation happens in the price service so missing data produces the
// localized error the clients expect.
type UpdatePricesRequest struct {
	Periods       entity.PeriodMap `json:"periods"`
	Prices        entity.RateMap   `json:"prices"`
	CurrentPeriod string           `json:"currentPeriod"`
}
