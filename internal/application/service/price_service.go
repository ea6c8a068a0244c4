package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/truythudien/truythu-api/internal/domain/entity"
	"github.com/truythudien/truythu-api/internal/domain/enum"
	"github.com/truythudien/truythu-api/internal/domain/policy"
	"github.com/truythudien/truythu-api/internal/domain/repository"
	"github.com/truythudien/truythu-api/pkg/apperror"
)

// DefaultCurrentPeriod is the period served before any config is saved.
const DefaultCurrentPeriod = "from_05_2025"

// DefaultPeriods returns the built-in tariff periods.
func DefaultPeriods() entity.PeriodMap {
	return entity.PeriodMap{
		"before_05_2025": {ID: "before_05_2025", Name: "Trước tháng 5/2025", ShortName: "Trước 5/2025"},
		"from_05_2025":   {ID: "from_05_2025", Name: "Hiện tại", ShortName: "Hiện tại"},
	}
}

// DefaultPrices returns the built-in tariff rates per period.
func DefaultPrices() entity.RateMap {
	rates := entity.TariffRates{
		Tier1:        1984,
		Tier2:        2050,
		Tier3:        2380,
		Tier4:        2998,
		Tier5:        3350,
		Tier6:        3460,
		Production:   1987,
		Business:     3152,
		HCSNHospital: 2072,
		HCSNLighting: 2226,
		VAT:          0.08,
	}
	return entity.RateMap{
		"before_05_2025": rates,
		"from_05_2025":   rates,
	}
}

// ActivePrices is the tariff table served to clients.
type ActivePrices struct {
	Periods       entity.PeriodMap `json:"periods"`
	Prices        entity.RateMap   `json:"prices"`
	CurrentPeriod string           `json:"currentPeriod"`
}

// PriceService resolves and updates the singleton tariff configuration
type PriceService struct {
	priceRepo repository.PriceConfigRepository
}

// NewPriceService creates a new price service
func NewPriceService(priceRepo repository.PriceConfigRepository) *PriceService {
	return &PriceService{priceRepo: priceRepo}
}

// GetActivePrices returns the persisted tariff table, or the built-in
// defaults when none has been saved yet. Load failures are logged for
// operators but never surfaced: price reads must always succeed.
func (s *PriceService) GetActivePrices(ctx context.Context) *ActivePrices {
	cfg, err := s.priceRepo.Get(ctx)
	if err != nil {
		log.Printf("price config fetch error: %v", err)
	}
	// A stored document missing either map is treated the same as no
	// document at all.
	if err == nil && cfg != nil && len(cfg.Periods) > 0 && len(cfg.Prices) > 0 {
		return &ActivePrices{
			Periods:       cfg.Periods,
			Prices:        cfg.Prices,
			CurrentPeriod: cfg.CurrentPeriod,
		}
	}

	return &ActivePrices{
		Periods:       DefaultPeriods(),
		Prices:        DefaultPrices(),
		CurrentPeriod: DefaultCurrentPeriod,
	}
}

// SetActivePricesInput represents an admin tariff update
type SetActivePricesInput struct {
	Periods       entity.PeriodMap
	Prices        entity.RateMap
	CurrentPeriod string
	UpdatedBy     uuid.UUID
	Role          enum.Role
}

// SetActivePrices validates and upserts the tariff table, returning the
// resulting current period. The caller's role is checked against the
// access policy here, not only at the HTTP layer. The current period must
// name an entry of both maps so the stored document always resolves.
func (s *PriceService) SetActivePrices(ctx context.Context, input *SetActivePricesInput) (string, error) {
	if !policy.Allowed(input.Role, policy.OpWritePrices) {
		return "", apperror.ErrForbidden
	}
	if len(input.Periods) == 0 || len(input.Prices) == 0 || input.CurrentPeriod == "" {
		return "", apperror.NewBadRequestError("Thiếu dữ liệu bảng giá cần lưu")
	}
	if _, ok := input.Periods[input.CurrentPeriod]; !ok {
		return "", apperror.NewBadRequestError("Kỳ giá hiện tại không có trong danh sách kỳ giá")
	}
	if _, ok := input.Prices[input.CurrentPeriod]; !ok {
		return "", apperror.NewBadRequestError("Kỳ giá hiện tại chưa có biểu giá tương ứng")
	}

	updatedBy := input.UpdatedBy
	cfg := &entity.PriceConfig{
		Key:           entity.PriceConfigKey,
		Periods:       input.Periods,
		Prices:        input.Prices,
		CurrentPeriod: input.CurrentPeriod,
		UpdatedByID:   &updatedBy,
	}

	if err := s.priceRepo.Upsert(ctx, cfg); err != nil {
		log.Printf("price config upsert error: %v", err)
		return "", apperror.ErrUnavailable
	}

	return cfg.CurrentPeriod, nil
}
