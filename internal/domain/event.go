// Package domain contains the core data types for the Tripbook application.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// TripEvent is a single trip record owned by one identity.
// Events are created once and never mutated or deleted afterwards;
// the directory read path consumes them as read-only records.
type TripEvent struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"` // supplied by the creator, not necessarily "now"
	Place      string    `json:"place"`
	Lat        float64   `json:"lat"`
	Lon        float64   `json:"lon"` // lat/lon stay zero when geocoding was skipped
	Owner      string    `json:"owner"`
	ImageRef   string    `json:"image_ref,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
