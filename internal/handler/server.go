// Package handler implements the HTTP handlers for the Tripbook API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (directory.go, visit.go, etc.) but all share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mrios/tripbook/internal/domain"
)

// DirectoryQuerier defines the directory read operation the handler depends on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type DirectoryQuerier interface {
	Query(ctx context.Context, actor, requestedSubject string) (domain.Directory, error)
}

// VisitLedger defines the visit ledger operations the handler depends on.
type VisitLedger interface {
	Record(ctx context.Context, visitorEmail, visitedEmail string) (domain.Visit, error)
	ListFor(ctx context.Context, subject string) ([]domain.Visit, error)
}

// EventServicer defines the event operations the handler depends on.
type EventServicer interface {
	Create(ctx context.Context, event domain.TripEvent) (domain.TripEvent, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.TripEvent, error)
}

// AuthServicer defines the account operations the handler depends on.
type AuthServicer interface {
	Register(ctx context.Context, email, password string) (domain.User, error)
	VerifyCredentials(ctx context.Context, email, password string) (string, error)
}

// SessionIssuer mints a session token for a verified identity.
// Implemented by auth.Tokens.
type SessionIssuer interface {
	Issue(email string) (string, error)
}

// Server implements all API endpoints.
// Wire it in main.go via r.Mount("/", srv.Routes()).
type Server struct {
	directory DirectoryQuerier
	visits    VisitLedger
	events    EventServicer
	auth      AuthServicer
	sessions  SessionIssuer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(directory DirectoryQuerier, visits VisitLedger, events EventServicer, auth AuthServicer, sessions SessionIssuer) *Server {
	return &Server{directory: directory, visits: visits, events: events, auth: auth, sessions: sessions}
}

// Routes returns the router with every endpoint registered.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Get("/directory", s.GetDirectory)

	r.Post("/visits", s.CreateVisit)
	r.Get("/visits", s.ListVisits)

	r.Post("/events", s.CreateEvent)
	r.Get("/events/{id}", s.GetEvent)

	r.Post("/auth/register", s.Register)
	r.Post("/auth/login", s.Login)

	return r
}
