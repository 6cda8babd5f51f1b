// Package model contains the GORM persistence structs mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// FacilityModel mirrors the 'facilities' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type FacilityModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string    `gorm:"type:varchar(200);not null"`
	Address       string    `gorm:"type:text;not null"`
	City          string    `gorm:"type:varchar(100);not null;index"`
	Pincode       string    `gorm:"type:varchar(10);not null;index"`
	Latitude      float64   `gorm:"type:decimal(9,6);not null"`
	Longitude     float64   `gorm:"type:decimal(9,6);not null"`
	Contact       string    `gorm:"type:varchar(15)"`
	AcceptedItems string    `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (FacilityModel) TableName() string {
	return "facilities"
}
