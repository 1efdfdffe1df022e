package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mrios/tripbook/internal/domain"
	"github.com/mrios/tripbook/internal/repo"
)

// Ledger is the slice of *VisitService the directory engine needs.
// Declared here so unit tests can observe and fail ledger calls independently
// of the event store.
type Ledger interface {
	Record(ctx context.Context, visitorEmail, visitedEmail string) (domain.Visit, error)
	ListFor(ctx context.Context, subject string) ([]domain.Visit, error)
}

// DirectoryService is the query engine behind a directory read: resolve the
// identities, fetch the subject's events, record the visit, and on a
// self-view include the subject's own visit ledger.
type DirectoryService struct {
	events repo.EventRepo
	ledger Ledger
	log    *slog.Logger
}

// NewDirectoryService constructs a DirectoryService.
// log is used only to report non-fatal ledger write failures; pass
// slog.Default() in production.
func NewDirectoryService(events repo.EventRepo, ledger Ledger, log *slog.Logger) *DirectoryService {
	return &DirectoryService{events: events, ledger: ledger, log: log}
}

// Query serves one directory read in a single pass:
//
//  1. Resolve subject/actor. domain.ErrInvalidSubject terminates the request
//     before any side effect.
//  2. Fetch the subject's events. A store failure is fatal and no visit is
//     recorded — a read that served nothing must not pollute the ledger.
//  3. Record the visit. Failure here is logged and swallowed: the response
//     and the bookkeeping side effect are independent outcomes, and a
//     lost ledger row never fails an otherwise-successful read.
//  4. On a self-view only, fetch the subject's ledger for the response.
//
// No call is retried; each storage operation is attempted exactly once.
func (s *DirectoryService) Query(ctx context.Context, actor, requestedSubject string) (domain.Directory, error) {
	id, err := ResolveIdentity(actor, requestedSubject)
	if err != nil {
		return domain.Directory{}, fmt.Errorf("service.DirectoryService.Query: %w", err)
	}

	events, err := s.events.ListByOwner(ctx, id.Subject)
	if err != nil {
		return domain.Directory{}, fmt.Errorf("service.DirectoryService.Query: %w", err)
	}
	if events == nil {
		events = []domain.TripEvent{}
	}

	if _, err := s.ledger.Record(ctx, id.Actor, id.Subject); err != nil {
		s.log.WarnContext(ctx, "visit not recorded",
			"subject", id.Subject,
			"actor", id.Actor,
			"error", err,
		)
	}

	dir := domain.Directory{Subject: id.Subject, Events: events}

	if id.SelfView() {
		visits, err := s.ledger.ListFor(ctx, id.Subject)
		if err != nil {
			return domain.Directory{}, fmt.Errorf("service.DirectoryService.Query: %w", err)
		}
		dir.Visits = visits
	}

	return dir, nil
}
