package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecycleEventModel mirrors the append-only 'recycle_events' history table.
type RecycleEventModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	DeviceID     uuid.UUID       `gorm:"type:uuid;not null"`
	PointsEarned int             `gorm:"not null"`
	CO2SavedKg   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecycleEventModel) TableName() string {
	return "recycle_events"
}
