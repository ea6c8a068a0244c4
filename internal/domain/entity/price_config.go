package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PriceConfigKey is the fixed key of the single tariff document.
const PriceConfigKey = "default"

// PricePeriod is one named tariff version (e.g. "before 05/2025").
type PricePeriod struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
}

// TariffRates holds the per-kWh rates of one period: six residential
// tiers, production, business, the two HCSN sub-rates and the VAT fraction.
type TariffRates struct {
	Tier1        float64 `json:"tier1"`
	Tier2        float64 `json:"tier2"`
	Tier3        float64 `json:"tier3"`
	Tier4        float64 `json:"tier4"`
	Tier5        float64 `json:"tier5"`
	Tier6        float64 `json:"tier6"`
	Production   float64 `json:"production"`
	Business     float64 `json:"business"`
	HCSNHospital float64 `json:"hcsn_hospital"`
	HCSNLighting float64 `json:"hcsn_lighting"`
	VAT          float64 `json:"vat"`
}

// PeriodMap maps period id to its display metadata, stored as jsonb.
type PeriodMap map[string]PricePeriod

func (m PeriodMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *PeriodMap) Scan(value interface{}) error {
	return scanJSON(value, m)
}

// RateMap maps period id to its tariff rates, stored as jsonb.
type RateMap map[string]TariffRates

func (m RateMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *RateMap) Scan(value interface{}) error {
	return scanJSON(value, m)
}

func scanJSON(value, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	}
	return errors.New("unsupported jsonb source type")
}

// PriceConfig is the authoritative tariff document. The unique key keeps
// it a singleton: every write is an upsert against the same row.
type PriceConfig struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Key           string     `gorm:"size:50;unique;not null" json:"-"`
	Periods       PeriodMap  `gorm:"type:jsonb;not null" json:"periods"`
	Prices        RateMap    `gorm:"type:jsonb;not null" json:"prices"`
	CurrentPeriod string     `gorm:"size:50;not null" json:"currentPeriod"`
	UpdatedByID   *uuid.UUID `gorm:"type:uuid" json:"updated_by,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// BeforeCreate generates a UUID and pins the singleton key
func (p *PriceConfig) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Key == "" {
		p.Key = PriceConfigKey
	}
	return nil
}

// TableName returns the table name for the PriceConfig model
func (PriceConfig) TableName() string {
	return "price_configs"
}
