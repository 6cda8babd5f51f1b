package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeviceModel mirrors the 'devices' catalog table.
// The (brand, model_name) pair is unique; the point value is derived, never stored.
type DeviceModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Brand          string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_devices_brand_model"`
	ModelName      string          `gorm:"type:varchar(200);not null;uniqueIndex:idx_devices_brand_model"`
	DeviceType     string          `gorm:"type:varchar(20);not null;default:'other'"`
	GoldMg         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CopperMg       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	SilverMg       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	EstimatedValue decimal.Decimal `gorm:"type:decimal(10,2);not null;check:estimated_value >= 0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
