package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/truythudien/truythu-api/internal/domain/entity"
)

// CalculationRepository defines the interface for saved reconciliation results
type CalculationRepository interface {
	Create(ctx context.Context, calc *entity.Calculation) error
	// ListByUser returns one user's records, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Calculation, error)
	// ListAll returns every user's records, newest first.
	ListAll(ctx context.Context) ([]entity.Calculation, error)
}
