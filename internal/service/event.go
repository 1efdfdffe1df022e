package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mrios/tripbook/internal/domain"
	"github.com/mrios/tripbook/internal/repo"
)

// EventService implements business logic for trip event operations.
type EventService struct {
	events repo.EventRepo
}

// NewEventService constructs an EventService backed by the provided EventRepo.
func NewEventService(r repo.EventRepo) *EventService {
	return &EventService{events: r}
}

// Create validates and persists a new trip event.
// Returns domain.ErrValidation if input violates business rules.
func (s *EventService) Create(ctx context.Context, event domain.TripEvent) (domain.TripEvent, error) {
	if err := validateEvent(event); err != nil {
		return domain.TripEvent{}, err
	}
	result, err := s.events.Create(ctx, event)
	if err != nil {
		return domain.TripEvent{}, fmt.Errorf("service.EventService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single event by ID.
// Returns domain.ErrNotFound if no event with that ID exists.
func (s *EventService) GetByID(ctx context.Context, id uuid.UUID) (domain.TripEvent, error) {
	result, err := s.events.GetByID(ctx, id)
	if err != nil {
		return domain.TripEvent{}, fmt.Errorf("service.EventService.GetByID: %w", err)
	}
	return result, nil
}

// validateEvent enforces business rules for event creation.
//   - Name and Place must be non-empty (whitespace-only is rejected).
//   - OccurredAt must be set (the creator supplies it; it need not be "now").
//   - Owner must be present — events always belong to an identity.
//
// Lat/Lon are deliberately not validated: zero coordinates mean geocoding
// was skipped, and no consistency with Place is required.
func validateEvent(event domain.TripEvent) error {
	if strings.TrimSpace(event.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(event.Place) == "" {
		return fmt.Errorf("%w: place is required", domain.ErrValidation)
	}
	if event.OccurredAt.IsZero() {
		return fmt.Errorf("%w: occurred_at is required", domain.ErrValidation)
	}
	if strings.TrimSpace(event.Owner) == "" {
		return fmt.Errorf("%w: owner is required", domain.ErrValidation)
	}
	return nil
}
