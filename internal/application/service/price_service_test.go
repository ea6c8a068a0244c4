package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truythudien/truythu-api/internal/domain/entity"
	"github.com/truythudien/truythu-api/internal/domain/enum"
	"github.com/truythudien/truythu-api/pkg/apperror"
)

func testPeriods() entity.PeriodMap {
	return entity.PeriodMap{
		"p1": {ID: "p1", Name: "A", ShortName: "A"},
	}
}

func testPrices() entity.RateMap {
	return entity.RateMap{
		"p1": {Tier1: 100, Tier2: 110, Tier3: 120, Tier4: 130, Tier5: 140, Tier6: 150,
			Production: 90, Business: 160, HCSNHospital: 95, HCSNLighting: 98, VAT: 0.1},
	}
}

func TestGetActivePricesDefaultsBeforeAnyWrite(t *testing.T) {
	svc := NewPriceService(&fakePriceConfigRepo{})

	got := svc.GetActivePrices(context.Background())

	assert.Equal(t, DefaultCurrentPeriod, got.CurrentPeriod)
	assert.Len(t, got.Periods, 2)
	assert.Contains(t, got.Periods, "before_05_2025")
	assert.Contains(t, got.Periods, "from_05_2025")
	assert.Equal(t, 1984.0, got.Prices["from_05_2025"].Tier1)
	assert.Equal(t, 3460.0, got.Prices["from_05_2025"].Tier6)
	assert.Equal(t, 0.08, got.Prices["from_05_2025"].VAT)
}

func TestGetActivePricesDefaultsOnStoreFailure(t *testing.T) {
	svc := NewPriceService(&fakePriceConfigRepo{getErr: errors.New("connection refused")})

	got := svc.GetActivePrices(context.Background())

	assert.Equal(t, DefaultCurrentPeriod, got.CurrentPeriod)
	assert.Equal(t, DefaultPeriods(), got.Periods)
}

func TestGetActivePricesDefaultsOnMalformedStoredConfig(t *testing.T) {
	// A persisted document missing one of its maps is treated as absent.
	repo := &fakePriceConfigRepo{cfg: &entity.PriceConfig{
		Key:           entity.PriceConfigKey,
		Periods:       testPeriods(),
		Prices:        nil,
		CurrentPeriod: "p1",
	}}
	svc := NewPriceService(repo)

	got := svc.GetActivePrices(context.Background())

	assert.Equal(t, DefaultCurrentPeriod, got.CurrentPeriod)
	assert.Equal(t, DefaultPeriods(), got.Periods)
}

func TestSetActivePricesRoundTrip(t *testing.T) {
	repo := &fakePriceConfigRepo{}
	svc := NewPriceService(repo)
	admin := uuid.New()

	current, err := svc.SetActivePrices(context.Background(), &SetActivePricesInput{
		Periods:       testPeriods(),
		Prices:        testPrices(),
		CurrentPeriod: "p1",
		UpdatedBy:     admin,
		Role:          enum.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, "p1", current)

	got := svc.GetActivePrices(context.Background())
	assert.Equal(t, testPeriods(), got.Periods)
	assert.Equal(t, testPrices(), got.Prices)
	assert.Equal(t, "p1", got.CurrentPeriod)

	require.NotNil(t, repo.cfg.UpdatedByID)
	assert.Equal(t, admin, *repo.cfg.UpdatedByID)
}

func TestSetActivePricesRequiresAllFields(t *testing.T) {
	tests := []struct {
		name  string
		input SetActivePricesInput
	}{
		{"missing periods", SetActivePricesInput{Prices: testPrices(), CurrentPeriod: "p1", Role: enum.RoleAdmin}},
		{"missing prices", SetActivePricesInput{Periods: testPeriods(), CurrentPeriod: "p1", Role: enum.RoleAdmin}},
		{"missing current period", SetActivePricesInput{Periods: testPeriods(), Prices: testPrices(), Role: enum.RoleAdmin}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakePriceConfigRepo{}
			svc := NewPriceService(repo)

			_, err := svc.SetActivePrices(context.Background(), &tt.input)

			assert.ErrorIs(t, err, apperror.ErrBadRequest)
			assert.Nil(t, repo.cfg, "store must stay untouched on rejected writes")
		})
	}
}

// The original implementation accepted a current period that was missing
// from the submitted maps; that gap is closed here, so a dangling current
// period is rejected up front.
func TestSetActivePricesRejectsDanglingCurrentPeriod(t *testing.T) {
	tests := []struct {
		name  string
		input SetActivePricesInput
	}{
		{"not in periods", SetActivePricesInput{
			Periods: entity.PeriodMap{"p2": {ID: "p2", Name: "B", ShortName: "B"}},
			Prices:  testPrices(), CurrentPeriod: "p1", Role: enum.RoleAdmin,
		}},
		{"not in prices", SetActivePricesInput{
			Periods: testPeriods(),
			Prices:  entity.RateMap{"p2": {Tier1: 1}}, CurrentPeriod: "p1", Role: enum.RoleAdmin,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakePriceConfigRepo{}
			svc := NewPriceService(repo)

			_, err := svc.SetActivePrices(context.Background(), &tt.input)

			assert.ErrorIs(t, err, apperror.ErrBadRequest)
			assert.Nil(t, repo.cfg)
		})
	}
}

func TestSetActivePricesStoreUnavailable(t *testing.T) {
	repo := &fakePriceConfigRepo{upsertErr: errors.New("connection refused")}
	svc := NewPriceService(repo)

	_, err := svc.SetActivePrices(context.Background(), &SetActivePricesInput{
		Periods:       testPeriods(),
		Prices:        testPrices(),
		CurrentPeriod: "p1",
		UpdatedBy:     uuid.New(),
		Role:          enum.RoleAdmin,
	})

	assert.ErrorIs(t, err, apperror.ErrUnavailable)
}

// A verified identity alone is not enough to replace the tariff table:
// the service consults the access policy itself, independent of any
// HTTP-layer guard.
func TestSetActivePricesRequiresAdminRole(t *testing.T) {
	tests := []struct {
		name string
		role enum.Role
	}{
		{"regular user", enum.RoleUser},
		{"no role", ""},
		{"unknown role", enum.Role("superuser")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakePriceConfigRepo{}
			svc := NewPriceService(repo)

			_, err := svc.SetActivePrices(context.Background(), &SetActivePricesInput{
				Periods:       testPeriods(),
				Prices:        testPrices(),
				CurrentPeriod: "p1",
				UpdatedBy:     uuid.New(),
				Role:          tt.role,
			})

			assert.ErrorIs(t, err, apperror.ErrForbidden)
			assert.Nil(t, repo.cfg, "store must stay untouched on forbidden writes")
		})
	}
}

func TestSetActivePricesReplacesPreviousConfig(t *testing.T) {
	repo := &fakePriceConfigRepo{}
	svc := NewPriceService(repo)

	_, err := svc.SetActivePrices(context.Background(), &SetActivePricesInput{
		Periods: testPeriods(), Prices: testPrices(), CurrentPeriod: "p1",
		UpdatedBy: uuid.New(), Role: enum.RoleAdmin,
	})
	require.NoError(t, err)

	newPeriods := entity.PeriodMap{
		"p1": {ID: "p1", Name: "A", ShortName: "A"},
		"p2": {ID: "p2", Name: "B", ShortName: "B"},
	}
	newPrices := entity.RateMap{
		"p1": testPrices()["p1"],
		"p2": {Tier1: 200, VAT: 0.08},
	}
	current, err := svc.SetActivePrices(context.Background(), &SetActivePricesInput{
		Periods: newPeriods, Prices: newPrices, CurrentPeriod: "p2",
		UpdatedBy: uuid.New(), Role: enum.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, "p2", current)

	got := svc.GetActivePrices(context.Background())
	assert.Equal(t, newPeriods, got.Periods)
	assert.Equal(t, newPrices, got.Prices)
	assert.Equal(t, "p2", got.CurrentPeriod)
}
