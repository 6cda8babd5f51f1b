package model

import (
	"time"

	"github.com/google/uuid"
)

// ComponentInfoModel mirrors the 'component_infos' table of harmful-material reference data.
type ComponentInfoModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Component           string    `gorm:"type:varchar(100);unique;not null"`
	FoundIn             string    `gorm:"type:text"`
	HealthEffect        string    `gorm:"type:text"`
	EnvironmentalEffect string    `gorm:"type:text"`
	Icon                string    `gorm:"type:varchar(50);not null;default:'⚠️'"`
	CreatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (ComponentInfoModel) TableName() string {
	return "component_infos"
}
