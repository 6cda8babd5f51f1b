// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecycleEvent is the auditable record of one recycle action: which user
// recycled which catalog device, and the rewards granted at that time.
// Events are append-only and written in the same transaction as the
// profile counter update.
type RecycleEvent struct {
	ID           uuid.UUID       // The Global Unique Identifier (GUID) for the event.
	UserID       uuid.UUID       // The user who recycled the device.
	DeviceID     uuid.UUID       // The catalog device that was recycled.
	PointsEarned int             // Points granted by this event.
	CO2SavedKg   decimal.Decimal // CO2 savings granted by this event, in kilograms.
	CreatedAt    time.Time       // Timestamp of when the event happened.
}
