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

// uniqueViolation is the Postgres error code for a unique constraint failure.
const uniqueViolation = "23505"

// VisitRepo defines the persistence operations for the visit ledger.
// The ledger is append-only: Insert is the only write, and no update or
// delete operations exist anywhere in the codebase.
type VisitRepo interface {
	// Insert appends one visit row. visited_at is assigned by the database
	// at insertion so ledger order is monotonic with insertion order, and
	// the row is durable before Insert returns — callers may assume the
	// visit is queryable immediately. A token collision returns
	// domain.ErrDuplicateToken; it is never retried here.
	Insert(ctx context.Context, visitorEmail, visitedEmail, token string) (domain.Visit, error)

	// ListForSubject returns all rows with visited_email == subject, newest
	// first; ties on visited_at break by insertion order. A subject with no
	// visits yields an empty slice, not an error.
	ListForSubject(ctx context.Context, subject string) ([]domain.Visit, error)
}

// pgVisitRepo is the Postgres implementation of VisitRepo.
type pgVisitRepo struct {
	db db
}

// NewVisitRepo constructs a VisitRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewVisitRepo(db db) VisitRepo {
	return &pgVisitRepo{db: db}
}

// Insert appends a visit row and returns the persisted record.
func (r *pgVisitRepo) Insert(ctx context.Context, visitorEmail, visitedEmail, token string) (domain.Visit, error) {
	const q = `
		INSERT INTO visits (visitor_email, visited_email, token)
		VALUES (@visitor_email, @visited_email, @token)
		RETURNING visited_at, visitor_email, visited_email, token`

	args := pgx.NamedArgs{
		"visitor_email": visitorEmail,
		"visited_email": visitedEmail,
		"token":         token,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanVisit(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.Visit{}, fmt.Errorf("repo.VisitRepo.Insert: %w", domain.ErrDuplicateToken)
		}
		return domain.Visit{}, fmt.Errorf("repo.VisitRepo.Insert: %w", err)
	}
	return result, nil
}

// ListForSubject returns the full ledger for one subject, newest first.
func (r *pgVisitRepo) ListForSubject(ctx context.Context, subject string) ([]domain.Visit, error) {
	const q = `
		SELECT visited_at, visitor_email, visited_email, token
		FROM visits
		WHERE visited_email = @visited_email
		ORDER BY visited_at DESC, id DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"visited_email": subject})
	if err != nil {
		return nil, fmt.Errorf("repo.VisitRepo.ListForSubject: %w", err)
	}
	defer rows.Close()

	var visits []domain.Visit
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.VisitRepo.ListForSubject: scan: %w", err)
		}
		visits = append(visits, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.VisitRepo.ListForSubject: rows: %w", err)
	}

	return visits, nil
}

// scanVisit maps a single database row into a domain.Visit.
func scanVisit(s scanner) (domain.Visit, error) {
	var (
		v     domain.Visit
		token pgtype.UUID
	)

	if err := s.Scan(&v.VisitedAt, &v.VisitorEmail, &v.VisitedEmail, &token); err != nil {
		return domain.Visit{}, err
	}

	v.Token = uuid.UUID(token.Bytes).String()
	return v, nil
}
