package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/truythudien/truythu-api/internal/domain/entity"
	domainRepo "github.com/truythudien/truythu-api/internal/domain/repository"
)

type priceConfigRepository struct {
	db *gorm.DB
}

// NewPriceConfigRepository creates a new price config repository
func NewPriceConfigRepository(db *gorm.DB) domainRepo.PriceConfigRepository {
	return &priceConfigRepository{db: db}
}

func (r *priceConfigRepository) Get(ctx context.Context) (*entity.PriceConfig, error) {
	var cfg entity.PriceConfig
	err := r.db.WithContext(ctx).First(&cfg, "key = ?", entity.PriceConfigKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &cfg, err
}

// Upsert replaces the singleton row in one statement so concurrent admin
// writers resolve last-write-wins without a torn document.
func (r *priceConfigRepository) Upsert(ctx context.Context, cfg *entity.PriceConfig) error {
	cfg.Key = entity.PriceConfigKey
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"periods", "prices", "current_period", "updated_by_id", "updated_at",
			}),
		}).
		Create(cfg).Error
}
