package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/aldercreekdigital/rolloff/internal/dumpster"
	"github.com/aldercreekdigital/rolloff/internal/pricing"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectDumpsterColumns = `
	id, business_id, unit_number, size, status, created_at, updated_at
`

func scanDumpster(s scanner) (*dumpster.Dumpster, error) {
	var d dumpster.Dumpster

	var size, status string

	if err := s.Scan(&d.ID, &d.BusinessID, &d.UnitNumber, &size, &status, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, err
	}

	d.Size = pricing.Size(size)
	d.Status = dumpster.Status(status)

	return &d, nil
}

func (s *Store) CreateDumpster(ctx context.Context, d *dumpster.Dumpster) error {
	query := `
		INSERT INTO dumpsters (business_id, unit_number, size, status, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, d.BusinessID, d.UnitNumber, d.Size, d.Status).
		Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating dumpster: %w", err)
	}

	return nil
}

func (s *Store) GetDumpster(ctx context.Context, businessID, id uuid.UUID) (*dumpster.Dumpster, error) {
	query := `SELECT ` + selectDumpsterColumns + `
		FROM dumpsters
		WHERE business_id = $1 AND id = $2`

	d, err := scanDumpster(s.db.QueryRowContext(ctx, query, businessID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dumpster.ErrNotFound
		}

		return nil, fmt.Errorf("getting dumpster: %w", err)
	}

	return d, nil
}

func (s *Store) ListDumpsters(ctx context.Context, businessID uuid.UUID, status *dumpster.Status) ([]*dumpster.Dumpster, error) {
	query := `SELECT ` + selectDumpsterColumns + `
		FROM dumpsters
		WHERE business_id = $1`

	args := []any{businessID}

	if status != nil {
		query += " AND status = $2"

		args = append(args, *status)
	}

	query += " ORDER BY unit_number"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing dumpsters: %w", err)
	}
	defer rows.Close()

	var dumpsters []*dumpster.Dumpster

	for rows.Next() {
		d, err := scanDumpster(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning dumpster: %w", err)
		}

		dumpsters = append(dumpsters, d)
	}

	return dumpsters, rows.Err()
}

func (s *Store) SetStatus(ctx context.Context, businessID, id uuid.UUID, status dumpster.Status) error {
	query := `
		UPDATE dumpsters
		SET status = $3, updated_at = NOW()
		WHERE business_id = $1 AND id = $2
	`

	res, err := s.db.ExecContext(ctx, query, businessID, id, status)
	if err != nil {
		return fmt.Errorf("updating dumpster status: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return dumpster.ErrNotFound
	}

	return nil
}

// FindOrphanedReservations reports dumpsters held reserved or dropped with no
// non-terminal booking pointing at them.
func (s *Store) FindOrphanedReservations(ctx context.Context, businessID uuid.UUID) ([]*dumpster.Dumpster, error) {
	query := `SELECT ` + selectDumpsterColumns + `
		FROM dumpsters d
		WHERE d.business_id = $1
			AND d.status IN ('reserved', 'dropped')
			AND NOT EXISTS (
				SELECT 1 FROM bookings b
				WHERE b.dumpster_id = d.id
					AND b.status NOT IN ('completed', 'cancelled')
			)
		ORDER BY d.unit_number`

	rows, err := s.db.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("finding orphaned reservations: %w", err)
	}
	defer rows.Close()

	var dumpsters []*dumpster.Dumpster

	for rows.Next() {
		d, err := scanDumpster(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning dumpster: %w", err)
		}

		dumpsters = append(dumpsters, d)
	}

	return dumpsters, rows.Err()
}
