// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Facility represents a physical e-waste drop-off and recycling location.
// Facilities form an admin-managed reference catalog; end-user flows never delete them.
type Facility struct {
	ID            uuid.UUID // The Global Unique Identifier (GUID) for the facility.
	Name          string    // The facility's display name.
	Address       string    // The full street address.
	City          string    // The city the facility is located in.
	Pincode       string    // The postal code, a short numeric-ish string.
	Latitude      float64   // Geographic latitude in decimal degrees.
	Longitude     float64   // Geographic longitude in decimal degrees.
	Contact       string    // A phone number or other contact handle.
	AcceptedItems string    // Comma-separated list of accepted e-waste items.
	CreatedAt     time.Time // Timestamp of when the facility was registered.
	UpdatedAt     time.Time // Timestamp of the last modification.
}

// GeoURI returns the facility location as an RFC 5870 geo URI, suitable for
// QR codes scanned by map applications.
func (f *Facility) GeoURI() string {
	return fmt.Sprintf("geo:%f,%f", f.Latitude, f.Longitude)
}

// AcceptedItemList splits the comma-separated accepted items into a slice,
// trimming surrounding whitespace from each entry.
func (f *Facility) AcceptedItemList() []string {
	parts := strings.Split(f.AcceptedItems, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}

	return items
}
