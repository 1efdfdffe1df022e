// Package repo contains all database access logic for the Tripbook API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/mrios/tripbook/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan helpers
// to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// EventRepo defines the persistence operations for trip events.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type EventRepo interface {
	// Create inserts a new event and returns the persisted record (with
	// DB-generated id and created_at populated). Events are immutable once
	// written; no update or delete operations exist.
	Create(ctx context.Context, event domain.TripEvent) (domain.TripEvent, error)

	// GetByID retrieves a single event by its UUID primary key.
	// Returns domain.ErrNotFound if no event with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.TripEvent, error)

	// ListByOwner returns all events whose owner matches the given identity
	// exactly (no case-folding, no partial match), ordered by occurred_at
	// descending. An owner with no events yields an empty slice, not an error.
	ListByOwner(ctx context.Context, owner string) ([]domain.TripEvent, error)
}

// pgEventRepo is the Postgres implementation of EventRepo.
type pgEventRepo struct {
	db db
}

// NewEventRepo constructs an EventRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewEventRepo(db db) EventRepo {
	return &pgEventRepo{db: db}
}

// Create inserts a new event row and returns the full persisted record.
func (r *pgEventRepo) Create(ctx context.Context, event domain.TripEvent) (domain.TripEvent, error) {
	const q = `
		INSERT INTO events (name, occurred_at, place, lat, lon, owner_email, image_ref)
		VALUES (@name, @occurred_at, @place, @lat, @lon, @owner_email, @image_ref)
		RETURNING id, name, occurred_at, place, lat, lon, owner_email, image_ref, created_at`

	args := pgx.NamedArgs{
		"name":        event.Name,
		"occurred_at": event.OccurredAt,
		"place":       event.Place,
		"lat":         event.Lat,
		"lon":         event.Lon,
		"owner_email": event.Owner,
		"image_ref":   event.ImageRef,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanEvent(row)
	if err != nil {
		return domain.TripEvent{}, fmt.Errorf("repo.EventRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves an event by primary key.
func (r *pgEventRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.TripEvent, error) {
	const q = `
		SELECT id, name, occurred_at, place, lat, lon, owner_email, image_ref, created_at
		FROM events
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanEvent(row)
	if err != nil {
		return domain.TripEvent{}, fmt.Errorf("repo.EventRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListByOwner returns all events for an owner, most recent occurred_at first.
func (r *pgEventRepo) ListByOwner(ctx context.Context, owner string) ([]domain.TripEvent, error) {
	const q = `
		SELECT id, name, occurred_at, place, lat, lon, owner_email, image_ref, created_at
		FROM events
		WHERE owner_email = @owner_email
		ORDER BY occurred_at DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"owner_email": owner})
	if err != nil {
		return nil, fmt.Errorf("repo.EventRepo.ListByOwner: %w", err)
	}
	defer rows.Close()

	var events []domain.TripEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.EventRepo.ListByOwner: scan: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.EventRepo.ListByOwner: rows: %w", err)
	}

	return events, nil
}

// scanEvent maps a single database row into a domain.TripEvent.
func scanEvent(s scanner) (domain.TripEvent, error) {
	var (
		e  domain.TripEvent
		id pgtype.UUID
	)

	err := s.Scan(&id, &e.Name, &e.OccurredAt, &e.Place, &e.Lat, &e.Lon,
		&e.Owner, &e.ImageRef, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TripEvent{}, domain.ErrNotFound
		}
		return domain.TripEvent{}, err
	}

	e.ID = uuid.UUID(id.Bytes)
	return e, nil
}
