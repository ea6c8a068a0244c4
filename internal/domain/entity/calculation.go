package entity

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultCustomerName is used when a calculation is saved without one.
const DefaultCustomerName = "Chưa có tên"

// JSON is an opaque jsonb payload. The structure is owned by the client
// (the full computed breakdown); the server stores it write-through.
type JSON json.RawMessage

func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return string(j), nil
}

func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		*j = append((*j)[0:0], v...)
	case string:
		*j = JSON(v)
	}
	return nil
}

func (j JSON) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return j, nil
}

func (j *JSON) UnmarshalJSON(data []byte) error {
	*j = append((*j)[0:0], data...)
	return nil
}

// Calculation is one saved reconciliation run. Records are created once by
// their owner and never updated or deleted.
type Calculation struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerName string    `gorm:"size:255" json:"customerName"`
	CustomerCode string    `gorm:"size:100" json:"customerCode"`
	TotalDungGia float64   `json:"totalDungGia"`
	TotalDaTinh  float64   `json:"totalDaTinh"`
	Diff         float64   `json:"diff"`
	Details      JSON      `gorm:"type:jsonb" json:"details,omitempty"`
	CreatedAt    time.Time `json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID and applies the customer name placeholder
func (c *Calculation) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CustomerName == "" {
		c.CustomerName = DefaultCustomerName
	}
	return nil
}

// TableName returns the table name for the Calculation model
func (Calculation) TableName() string {
	return "calculations"
}
