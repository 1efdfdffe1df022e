package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mrios/tripbook/internal/domain"
)

// VisitService implements the visit ledger operations: appending visit rows
// and reading a subject's ledger. It owns token generation; the repo only
// persists what it is handed.
type VisitService struct {
	visits VisitInserter
}

// VisitInserter is the slice of repo.VisitRepo the service needs.
// Declared here so unit tests can inject a mock without a database.
type VisitInserter interface {
	Insert(ctx context.Context, visitorEmail, visitedEmail, token string) (domain.Visit, error)
	ListForSubject(ctx context.Context, subject string) ([]domain.Visit, error)
}

// NewVisitService constructs a VisitService backed by the provided repo.
func NewVisitService(visits VisitInserter) *VisitService {
	return &VisitService{visits: visits}
}

// Record appends one visit row for visitorEmail reading visitedEmail's
// directory. An empty visitorEmail is a valid, loggable anonymous visit.
// Repeated visits are never deduplicated — every call writes a new row.
//
// The token is a freshly generated UUID, unique across the ledger; the
// timestamp is assigned by the store at insertion. Returns
// domain.ErrMissingSubject (and writes nothing) when visitedEmail is empty.
func (s *VisitService) Record(ctx context.Context, visitorEmail, visitedEmail string) (domain.Visit, error) {
	visitedEmail = strings.TrimSpace(visitedEmail)
	if visitedEmail == "" {
		return domain.Visit{}, fmt.Errorf("service.VisitService.Record: %w", domain.ErrMissingSubject)
	}

	visit, err := s.visits.Insert(ctx, visitorEmail, visitedEmail, uuid.NewString())
	if err != nil {
		return domain.Visit{}, fmt.Errorf("service.VisitService.Record: %w", err)
	}
	return visit, nil
}

// ListFor returns the full ledger for a subject, newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *VisitService) ListFor(ctx context.Context, subject string) ([]domain.Visit, error) {
	visits, err := s.visits.ListForSubject(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("service.VisitService.ListFor: %w", err)
	}
	if visits == nil {
		return []domain.Visit{}, nil
	}
	return visits, nil
}
