// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User is the core entity in the system, representing a unique account.
// It contains only the most fundamental identity information.
type User struct {
	ID        uuid.UUID        // The Global Unique Identifier (GUID) for the user.
	Email     string           // The user's primary contact email, used as the login identifier.
	Name      string           // The user's display name.
	Profile   *RecyclerProfile // The per-user recycling accumulator; exactly one per account.
	CreatedAt time.Time        // Timestamp of when this user account was created.
	UpdatedAt time.Time        // Timestamp of the last modification to this user's data.
}

// RecyclerProfile is the per-user accumulator of recycling points, device
// count, and CO2 savings. It is created in the same transaction as the
// account and lives exactly as long as it.
type RecyclerProfile struct {
	UserID        uuid.UUID       // Foreign Key that links this profile to a core User entity.
	Points        int             // Points earned from recycling, never negative.
	TotalRecycled int             // Total number of devices recycled.
	CO2SavedKg    decimal.Decimal // CO2 saved in kilograms, accumulated with exact decimal arithmetic.
	UpdatedAt     time.Time       // Timestamp of the last modification to this profile.
}

// Accrual describes the profile deltas produced by recycling one device.
type Accrual struct {
	Points     int
	CO2SavedKg decimal.Decimal
}

// AccrualFor computes the deltas a single recycle of the given device adds to
// a profile. The device count always increments by exactly one.
func AccrualFor(device *Device) Accrual {
	points := device.PointValue()

	return Accrual{
		Points:     points,
		CO2SavedKg: CO2ForPoints(points),
	}
}
