package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/truythudien/truythu-api/internal/domain/entity"
	"github.com/truythudien/truythu-api/internal/domain/enum"
	"github.com/truythudien/truythu-api/internal/domain/policy"
	"github.com/truythudien/truythu-api/internal/domain/repository"
	"github.com/truythudien/truythu-api/pkg/apperror"
)

// CalculationService stores and lists saved reconciliation results
type CalculationService struct {
	calcRepo repository.CalculationRepository
}

// NewCalculationService creates a new calculation service
func NewCalculationService(calcRepo repository.CalculationRepository) *CalculationService {
	return &CalculationService{calcRepo: calcRepo}
}

// SaveCalculationInput represents one reconciliation result to persist.
// The monetary fields and the details payload are taken as computed by the
// client; the service does not re-derive them.
type SaveCalculationInput struct {
	UserID       uuid.UUID
	CustomerName string
	CustomerCode string
	TotalDungGia float64
	TotalDaTinh  float64
	Diff         float64
	Details      entity.JSON
}

// SaveCalculation persists a record owned by the calling user and returns
// the generated identifier. Ownership always comes from the verified
// identity, never from the request body.
func (s *CalculationService) SaveCalculation(ctx context.Context, input *SaveCalculationInput) (uuid.UUID, error) {
	name := input.CustomerName
	if name == "" {
		name = entity.DefaultCustomerName
	}

	calc := &entity.Calculation{
		UserID:       input.UserID,
		CustomerName: name,
		CustomerCode: input.CustomerCode,
		TotalDungGia: input.TotalDungGia,
		TotalDaTinh:  input.TotalDaTinh,
		Diff:         input.Diff,
		Details:      input.Details,
	}

	if err := s.calcRepo.Create(ctx, calc); err != nil {
		return uuid.Nil, apperror.ErrUnavailable
	}

	return calc.ID, nil
}

// ListCalculations returns the records visible to the caller, newest first:
// admins see every user's records, everyone else only their own.
func (s *CalculationService) ListCalculations(ctx context.Context, callerID uuid.UUID, role enum.Role) ([]entity.Calculation, error) {
	var (
		calcs []entity.Calculation
		err   error
	)
	switch policy.CalculationScope(role) {
	case policy.ScopeAll:
		calcs, err = s.calcRepo.ListAll(ctx)
	default:
		calcs, err = s.calcRepo.ListByUser(ctx, callerID)
	}
	if err != nil {
		return nil, apperror.ErrUnavailable
	}
	return calcs, nil
}
