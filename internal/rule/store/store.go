package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/aldercreekdigital/rolloff/internal/pricing"
	"github.com/aldercreekdigital/rolloff/internal/rule"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectRuleColumns = `
	id, business_id, waste_type, size, base_price_cents, delivery_fee_cents,
	haul_fee_cents, included_days, extra_day_fee_cents, included_tons,
	overage_per_ton_cents, tax_exempt, active, created_at, updated_at
`

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRule(s scanner) (*rule.Rule, error) {
	var r rule.Rule

	var wasteType, size string

	if err := s.Scan(
		&r.ID, &r.BusinessID, &wasteType, &size, &r.BasePriceCents, &r.DeliveryFeeCents,
		&r.HaulFeeCents, &r.IncludedDays, &r.ExtraDayFeeCents, &r.IncludedTons,
		&r.OveragePerTonCents, &r.TaxExempt, &r.Active, &r.CreatedAt, &r.UpdatedAt,
	); err != nil {
		return nil, err
	}

	r.WasteType = pricing.WasteType(wasteType)
	r.Size = pricing.Size(size)

	return &r, nil
}

func (s *Store) FindActive(ctx context.Context, businessID uuid.UUID, wasteType pricing.WasteType, size pricing.Size) (*rule.Rule, error) {
	query := `SELECT ` + selectRuleColumns + `
		FROM pricing_rules
		WHERE business_id = $1 AND waste_type = $2 AND size = $3 AND active`

	r, err := scanRule(s.db.QueryRowContext(ctx, query, businessID, wasteType, size))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, rule.ErrNotFound
		}

		return nil, fmt.Errorf("finding active rule: %w", err)
	}

	return r, nil
}

func (s *Store) ListRules(ctx context.Context, businessID uuid.UUID) ([]*rule.Rule, error) {
	query := `SELECT ` + selectRuleColumns + `
		FROM pricing_rules
		WHERE business_id = $1
		ORDER BY waste_type, size, created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("listing rules: %w", err)
	}
	defer rows.Close()

	var rules []*rule.Rule

	for rows.Next() {
		r, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning rule: %w", err)
		}

		rules = append(rules, r)
	}

	return rules, rows.Err()
}

// CreateRule inserts the rule and deactivates any previously active rule for
// the same (waste type, size) pair inside a single transaction, preserving the
// one-active-rule-per-pair invariant.
func (s *Store) CreateRule(ctx context.Context, r *rule.Rule) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	deactivate := `
		UPDATE pricing_rules
		SET active = FALSE, updated_at = NOW()
		WHERE business_id = $1 AND waste_type = $2 AND size = $3 AND active
	`
	if _, err := tx.ExecContext(ctx, deactivate, r.BusinessID, r.WasteType, r.Size); err != nil {
		return fmt.Errorf("deactivating previous rule: %w", err)
	}

	insert := `
		INSERT INTO pricing_rules (
			business_id, waste_type, size, base_price_cents, delivery_fee_cents,
			haul_fee_cents, included_days, extra_day_fee_cents, included_tons,
			overage_per_ton_cents, tax_exempt, active, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, TRUE, NOW())
		RETURNING id, created_at
	`

	err = tx.QueryRowContext(ctx, insert,
		r.BusinessID, r.WasteType, r.Size, r.BasePriceCents, r.DeliveryFeeCents,
		r.HaulFeeCents, r.IncludedDays, r.ExtraDayFeeCents, r.IncludedTons,
		r.OveragePerTonCents, r.TaxExempt,
	).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating rule: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing rule: %w", err)
	}

	r.Active = true

	return nil
}

func (s *Store) DeactivateRule(ctx context.Context, businessID, id uuid.UUID) error {
	query := `
		UPDATE pricing_rules
		SET active = FALSE, updated_at = NOW()
		WHERE business_id = $1 AND id = $2
	`

	res, err := s.db.ExecContext(ctx, query, businessID, id)
	if err != nil {
		return fmt.Errorf("deactivating rule: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return rule.ErrNotFound
	}

	return nil
}
