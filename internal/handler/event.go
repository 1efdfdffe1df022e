package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mrios/tripbook/internal/auth"
	"github.com/mrios/tripbook/internal/domain"
)

// createEventRequest is the body of POST /events.
// The owner is never taken from the body — it is always the session identity.
type createEventRequest struct {
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
	Place      string    `json:"place"`
	Lat        float64   `json:"lat"`
	Lon        float64   `json:"lon"`
	ImageRef   string    `json:"image_ref"`
}

// CreateEvent handles POST /events.
// Requires a session: events always belong to an authenticated identity.
func (s *Server) CreateEvent(w http.ResponseWriter, r *http.Request) {
	owner := auth.Identity(r.Context())
	if owner == "" {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "sign in to create events")
		return
	}

	var req createEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "validation_error", "request body must be valid JSON")
		return
	}

	created, err := s.events.Create(r.Context(), domain.TripEvent{
		Name:       req.Name,
		OccurredAt: req.OccurredAt,
		Place:      req.Place,
		Lat:        req.Lat,
		Lon:        req.Lon,
		Owner:      owner,
		ImageRef:   req.ImageRef,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// GetEvent handles GET /events/{id}.
func (s *Server) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "validation_error", "invalid event id")
		return
	}

	event, err := s.events.GetByID(r.Context(), id)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, event)
}
