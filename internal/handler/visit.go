package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/mrios/tripbook/internal/auth"
	"github.com/mrios/tripbook/internal/domain"
)

// createVisitRequest is the body of POST /visits.
// VisitorEmail is a pointer so "field absent" (default to the session
// identity) is distinguishable from an explicit empty string (anonymous).
type createVisitRequest struct {
	VisitedEmail string  `json:"visited_email"`
	VisitorEmail *string `json:"visitor_email,omitempty"`
}

// createVisitResponse is the body of a successful POST /visits.
type createVisitResponse struct {
	Token     string    `json:"token"`
	Timestamp time.Time `json:"timestamp"`
}

// CreateVisit handles POST /visits.
// It appends one row to the visit ledger; repeat visits are never collapsed.
func (s *Server) CreateVisit(w http.ResponseWriter, r *http.Request) {
	var req createVisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "validation_error", "request body must be valid JSON")
		return
	}

	visitor := auth.Identity(r.Context())
	if req.VisitorEmail != nil {
		visitor = *req.VisitorEmail
	}

	visit, err := s.visits.Record(r.Context(), visitor, req.VisitedEmail)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, createVisitResponse{
		Token:     visit.Token,
		Timestamp: visit.VisitedAt,
	})
}

// ListVisits handles GET /visits: the caller's own received-visit ledger,
// newest first. The ledger is visible only to its subject, so an anonymous
// request is rejected.
func (s *Server) ListVisits(w http.ResponseWriter, r *http.Request) {
	subject := auth.Identity(r.Context())
	if subject == "" {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "sign in to view your visit ledger")
		return
	}

	visits, err := s.visits.ListFor(r.Context(), subject)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string][]domain.Visit{"visits": visits})
}
