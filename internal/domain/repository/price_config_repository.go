package repository

import (
	"context"

	"github.com/truythudien/truythu-api/internal/domain/entity"
)

// PriceConfigRepository defines the interface for the singleton tariff document
type PriceConfigRepository interface {
	// Get returns the current config, or (nil, nil) when none has been saved.
	Get(ctx context.Context) (*entity.PriceConfig, error)
	// Upsert creates or replaces the config at the fixed singleton key.
	Upsert(ctx context.Context, cfg *entity.PriceConfig) error
}
