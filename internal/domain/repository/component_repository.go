// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"ecycle/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrComponentNotFound is returned when a component record is not found.
var ErrComponentNotFound = errors.New("component not found")

// ComponentRepository defines read operations over the harmful-component
// reference data. The records are admin-managed; this service never writes them.
type ComponentRepository interface {
	// FindByID retrieves a single component by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ComponentInfo, error)

	// FindAll returns every component ordered by component name.
	FindAll(ctx context.Context) ([]*entity.ComponentInfo, error)
}
