// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"strings"

	"ecycle/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFacilityNotFound is returned when a facility is not found.
var ErrFacilityNotFound = errors.New("facility not found")

// FacilitySearchMode selects which facility attribute a locator search matches.
type FacilitySearchMode string

const (
	// FacilitySearchAll disables filtering and returns the whole catalog.
	FacilitySearchAll FacilitySearchMode = ""
	// FacilitySearchCity matches the query against the city.
	FacilitySearchCity FacilitySearchMode = "city"
	// FacilitySearchPincode matches the query against the pincode.
	FacilitySearchPincode FacilitySearchMode = "pincode"
)

// IsValid checks if the FacilitySearchMode is a valid value.
func (m FacilitySearchMode) IsValid() bool {
	switch m {
	case FacilitySearchAll, FacilitySearchCity, FacilitySearchPincode:
		return true
	default:
		return false
	}
}

// FacilityFilter is an explicit specification of a facility query, keeping
// filter composition out of the handlers. Zero value means "everything".
//
// Mode/Query drive the locator page (one attribute at a time); City/Pincode
// drive the JSON feed (independently ANDed). A selected mode with an empty
// query is a no-op filter.
type FacilityFilter struct {
	Mode    FacilitySearchMode
	Query   string
	City    string
	Pincode string
}

// Matches reports whether a facility satisfies the filter. Matching is
// case-insensitive substring containment, mirroring the SQL ILIKE predicates
// the persistence layer derives from this specification.
func (f FacilityFilter) Matches(facility *entity.Facility) bool {
	switch f.Mode {
	case FacilitySearchCity:
		if f.Query != "" && !containsFold(facility.City, f.Query) {
			return false
		}
	case FacilitySearchPincode:
		if f.Query != "" && !containsFold(facility.Pincode, f.Query) {
			return false
		}
	}

	if f.City != "" && !containsFold(facility.City, f.City) {
		return false
	}
	if f.Pincode != "" && !containsFold(facility.Pincode, f.Pincode) {
		return false
	}

	return true
}

// containsFold reports whether s contains substr under Unicode case folding.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// FacilityRepository defines the standard operations for facility persistence.
type FacilityRepository interface {
	// FindByID retrieves a single facility by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Facility, error)

	// Search returns all facilities matching the filter, ordered by city then name.
	Search(ctx context.Context, filter FacilityFilter) ([]*entity.Facility, error)

	// Count returns the total number of facilities.
	Count(ctx context.Context) (int64, error)
}
