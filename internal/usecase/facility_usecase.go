package usecase

import (
	"context"

	"ecycle/internal/domain/entity"
	"ecycle/internal/domain/repository"

	"github.com/google/uuid"
)

// SearchFacilitiesInput carries the locator page's search form.
type SearchFacilitiesInput struct {
	Mode  repository.FacilitySearchMode
	Query string
}

// FacilityFeedInput carries the JSON feed's optional filters and the optional
// reference point for distance sorting.
type FacilityFeedInput struct {
	City    string
	Pincode string
	Lat     *float64
	Lng     *float64
}

// FacilityFeedItem is one record of the facility JSON feed. DistanceKm is
// only set when the request carried a reference point.
type FacilityFeedItem struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	City          string    `json:"city"`
	Pincode       string    `json:"pincode"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	Contact       string    `json:"contact"`
	AcceptedItems string    `json:"accepted_items"`
	DistanceKm    *float64  `json:"distance_km,omitempty"`
}

// FacilityUsecase defines the facility locator operations.
type FacilityUsecase interface {
	// Search returns facilities matching the locator form, ordered by city then name.
	Search(ctx context.Context, input SearchFacilitiesInput) ([]*entity.Facility, error)

	// Feed returns the JSON feed records, filtered by city/pincode and sorted
	// by distance when a reference point is given.
	Feed(ctx context.Context, input FacilityFeedInput) ([]FacilityFeedItem, error)

	// LocationQR renders a facility's geo URI as a QR code PNG.
	LocationQR(ctx context.Context, facilityID uuid.UUID) ([]byte, error)
}
