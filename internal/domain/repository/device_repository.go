// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"ecycle/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDeviceNotFound is returned when no catalog device matches a lookup.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the standard operations for the device catalog.
type DeviceRepository interface {
	// FindByID retrieves a single device by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	// FindAll returns the whole catalog ordered by brand then model name.
	FindAll(ctx context.Context) ([]*entity.Device, error)

	// FindByBrandAndModel looks up a device whose brand matches exactly
	// case-insensitively and whose model name contains the fragment
	// case-insensitively. When several rows match, the first in the
	// catalog's (brand, model_name) ordering is returned; zero rows yield
	// ErrDeviceNotFound.
	FindByBrandAndModel(ctx context.Context, brand, modelFragment string) (*entity.Device, error)

	// Count returns the total number of catalog devices.
	Count(ctx context.Context) (int64, error)
}
