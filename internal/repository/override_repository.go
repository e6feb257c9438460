package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yuchiehk/coachbot/internal/model"
)

type OverrideRepository struct {
	pool *pgxpool.Pool
}

func NewOverrideRepository(pool *pgxpool.Pool) *OverrideRepository {
	return &OverrideRepository{pool: pool}
}

// Get returns the override for a date, or nil when the default weekly
// pattern applies.
func (r *OverrideRepository) Get(ctx context.Context, date string) (*model.DateOverride, error) {
	query := `
		SELECT date, status, reason, updated_at
		FROM date_overrides
		WHERE date = $1
	`

	d, err := model.ParseDate(date)
	if err != nil {
		return nil, err
	}

	ov, err := scanOverride(r.pool.QueryRow(ctx, query, d))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get override: %w", err)
	}

	return ov, nil
}

// GetRange returns the overrides for [from, from+days) keyed by date.
func (r *OverrideRepository) GetRange(ctx context.Context, from string, days int) (map[string]model.DateOverride, error) {
	query := `
		SELECT date, status, reason, updated_at
		FROM date_overrides
		WHERE date >= $1
		  AND date < $2
	`

	start, err := model.ParseDate(from)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, query, start, start.AddDate(0, 0, days))
	if err != nil {
		return nil, fmt.Errorf("get override range: %w", err)
	}
	defer rows.Close()

	overrides := make(map[string]model.DateOverride)
	for rows.Next() {
		ov, err := scanOverride(rows)
		if err != nil {
			return nil, fmt.Errorf("get override range: %w", err)
		}
		overrides[ov.Date] = *ov
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get override range: %w", err)
	}

	return overrides, nil
}

// Upsert creates or replaces the override for a date.
func (r *OverrideRepository) Upsert(ctx context.Context, ov model.DateOverride) error {
	query := `
		INSERT INTO date_overrides (date, status, reason, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (date) DO UPDATE
		SET status = EXCLUDED.status,
		    reason = EXCLUDED.reason,
		    updated_at = NOW()
	`

	d, err := model.ParseDate(ov.Date)
	if err != nil {
		return err
	}

	if _, err := r.pool.Exec(ctx, query, d, ov.Status, ov.Reason); err != nil {
		return fmt.Errorf("upsert override: %w", err)
	}

	return nil
}

func scanOverride(row pgx.Row) (*model.DateOverride, error) {
	var (
		ov   model.DateOverride
		date time.Time
	)

	if err := row.Scan(&date, &ov.Status, &ov.Reason, &ov.UpdatedAt); err != nil {
		return nil, err
	}

	ov.Date = date.Format(model.DateLayout)
	return &ov, nil
}
