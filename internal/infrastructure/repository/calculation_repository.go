package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/truythudien/truythu-api/internal/domain/entity"
	domainRepo "github.com/truythudien/truythu-api/internal/domain/repository"
)

type calculationRepository struct {
	db *gorm.DB
}

// NewCalculationRepository creates a new calculation repository
func NewCalculationRepository(db *gorm.DB) domainRepo.CalculationRepository {
	return &calculationRepository{db: db}
}

func (r *calculationRepository) Create(ctx context.Context, calc *entity.Calculation) error {
	return r.db.WithContext(ctx).Create(calc).Error
}

func (r *calculationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Calculation, error) {
	var calcs []entity.Calculation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&calcs).Error
	return calcs, err
}

func (r *calculationRepository) ListAll(ctx context.Context) ([]entity.Calculation, error) {
	var calcs []entity.Calculation
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&calcs).Error
	return calcs, err
}
