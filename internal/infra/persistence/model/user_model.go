package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	Name      string    `gorm:"type:varchar(100)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Profile         *RecyclerProfileModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Authentications []AuthenticationModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// RecyclerProfileModel mirrors the 'recycler_profiles' table. UserID references users.id (UUID).
// The profile row is created in the same transaction as its user and cascade-deleted with it.
type RecyclerProfileModel struct {
	UserID        uuid.UUID       `gorm:"primaryKey"`
	Points        int             `gorm:"not null;default:0;check:points >= 0"`
	TotalRecycled int             `gorm:"not null;default:0;check:total_recycled >= 0"`
	CO2SavedKg    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecyclerProfileModel) TableName() string {
	return "recycler_profiles"
}
