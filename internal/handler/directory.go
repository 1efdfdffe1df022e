package handler

import (
	"net/http"

	"github.com/mrios/tripbook/internal/auth"
	"github.com/mrios/tripbook/internal/domain"
)

// directoryResponse is the body of GET /directory. Visits is a pointer so a
// self-view with an empty ledger serializes as "visits": [] while any other
// view omits the key entirely.
type directoryResponse struct {
	Subject string             `json:"subject"`
	Events  []domain.TripEvent `json:"events"`
	Visits  *[]domain.Visit    `json:"visits,omitempty"`
}

// GetDirectory handles GET /directory?subject=<email>.
//
// The subject query parameter selects whose directory to read; when omitted
// it defaults to the session identity. Anonymous requests are allowed as long
// as they name a subject. The response includes the subject's visit ledger
// only when the caller is reading their own directory.
func (s *Server) GetDirectory(w http.ResponseWriter, r *http.Request) {
	actor := auth.Identity(r.Context())
	subject := r.URL.Query().Get("subject")

	dir, err := s.directory.Query(r.Context(), actor, subject)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	resp := directoryResponse{Subject: dir.Subject, Events: dir.Events}
	if dir.Visits != nil {
		resp.Visits = &dir.Visits
	}
	respondJSON(w, http.StatusOK, resp)
}
