// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultComponentIcon is used when a component has no explicit icon.
const DefaultComponentIcon = "⚠️"

// ComponentInfo holds educational information about a harmful material found
// in electronics (e.g., lead, mercury). Static reference data, admin-managed.
type ComponentInfo struct {
	ID                  uuid.UUID // The Global Unique Identifier (GUID) for the component record.
	Component           string    // The unique component name, e.g., "Lead".
	FoundIn             string    // Devices where this component is typically found.
	HealthEffect        string    // Impact on human health.
	EnvironmentalEffect string    // Impact on the environment.
	Icon                string    // Emoji or icon representation.
	CreatedAt           time.Time // Timestamp of when the record was created.
}
