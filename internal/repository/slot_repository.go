package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yuchiehk/coachbot/internal/model"
)

type SlotRepository struct {
	pool *pgxpool.Pool
}

func NewSlotRepository(pool *pgxpool.Pool) *SlotRepository {
	return &SlotRepository{pool: pool}
}

// ListAvailableDates returns the distinct dates that still have at least
// one available slot, ascending. Calendar open/closed filtering happens
// in the availability service, not here.
func (r *SlotRepository) ListAvailableDates(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT date
		FROM slots
		WHERE status = 'available'
		ORDER BY date
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list available dates: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan date: %w", err)
		}
		dates = append(dates, d.Format(model.DateLayout))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list available dates: %w", err)
	}

	return dates, nil
}

// ListAvailableSlots returns the available slots for a date, ordered by
// start time. Blocked and booked slots are never shown to students.
func (r *SlotRepository) ListAvailableSlots(ctx context.Context, date string) ([]model.Slot, error) {
	query := `
		SELECT id, date, start_time, end_time, status, user_id, created_at
		FROM slots
		WHERE date = $1
		  AND status = 'available'
		ORDER BY start_time
	`
	return r.querySlots(ctx, "list available slots", query, date)
}

// ListAllSlots returns every slot for a date regardless of status,
// ordered by start time. This is the raw coach view.
func (r *SlotRepository) ListAllSlots(ctx context.Context, date string) ([]model.Slot, error) {
	query := `
		SELECT id, date, start_time, end_time, status, user_id, created_at
		FROM slots
		WHERE date = $1
		ORDER BY start_time
	`
	return r.querySlots(ctx, "list all slots", query, date)
}

// ListUserBookings returns the slots currently booked by a user,
// ordered by date then start time.
func (r *SlotRepository) ListUserBookings(ctx context.Context, userID string) ([]model.Slot, error) {
	query := `
		SELECT id, date, start_time, end_time, status, user_id, created_at
		FROM slots
		WHERE status = 'booked'
		  AND user_id = $1
		ORDER BY date, start_time
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list user bookings: %w", err)
	}
	defer rows.Close()

	return scanSlots(rows, "list user bookings")
}

// ListBookedByDate returns the booked slots for a date, ordered by
// start time. Used by the reminder task.
func (r *SlotRepository) ListBookedByDate(ctx context.Context, date string) ([]model.Slot, error) {
	query := `
		SELECT id, date, start_time, end_time, status, user_id, created_at
		FROM slots
		WHERE date = $1
		  AND status = 'booked'
		ORDER BY start_time
	`
	return r.querySlots(ctx, "list booked by date", query, date)
}

// TryBook atomically transitions a slot from available to booked. The
// precondition is part of the UPDATE itself: the affected-row count
// decides success, so concurrent confirmers can never both win.
func (r *SlotRepository) TryBook(ctx context.Context, id model.SlotID, userID string) (bool, error) {
	query := `
		UPDATE slots
		SET status = 'booked',
		    user_id = $1,
		    updated_at = NOW()
		WHERE date = $2
		  AND start_time = $3
		  AND end_time = $4
		  AND status = 'available'
	`

	date, err := model.ParseDate(id.Date)
	if err != nil {
		return false, err
	}

	tag, err := r.pool.Exec(ctx, query, userID, date, id.Start, id.End)
	if err != nil {
		return false, fmt.Errorf("try book: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

// TryCancel atomically transitions a slot from booked back to available,
// but only if the caller owns the booking. A false result means there
// was nothing to cancel; it is not an error.
func (r *SlotRepository) TryCancel(ctx context.Context, id model.SlotID, userID string) (bool, error) {
	query := `
		UPDATE slots
		SET status = 'available',
		    user_id = NULL,
		    updated_at = NOW()
		WHERE date = $1
		  AND start_time = $2
		  AND end_time = $3
		  AND status = 'booked'
		  AND user_id = $4
	`

	date, err := model.ParseDate(id.Date)
	if err != nil {
		return false, err
	}

	tag, err := r.pool.Exec(ctx, query, date, id.Start, id.End, userID)
	if err != nil {
		return false, fmt.Errorf("try cancel: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

// Lock forces a slot into blocked, bypassing ownership checks. The
// owner is cleared so that user_id stays set only on booked rows.
func (r *SlotRepository) Lock(ctx context.Context, id model.SlotID) (bool, error) {
	query := `
		UPDATE slots
		SET status = 'blocked',
		    user_id = NULL,
		    updated_at = NOW()
		WHERE date = $1
		  AND start_time = $2
		  AND end_time = $3
	`
	return r.execOnSlot(ctx, "lock slot", query, id)
}

// Unlock forces a slot back to available, clearing the owner
// unconditionally.
func (r *SlotRepository) Unlock(ctx context.Context, id model.SlotID) (bool, error) {
	query := `
		UPDATE slots
		SET status = 'available',
		    user_id = NULL,
		    updated_at = NOW()
		WHERE date = $1
		  AND start_time = $2
		  AND end_time = $3
	`
	return r.execOnSlot(ctx, "unlock slot", query, id)
}

// CreateIfAbsent inserts a slot unless one already exists for the same
// identity. Re-running generation never clobbers booked rows.
func (r *SlotRepository) CreateIfAbsent(ctx context.Context, slot model.Slot) (bool, error) {
	query := `
		INSERT INTO slots (date, start_time, end_time, status, user_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (date, start_time, end_time) DO NOTHING
	`

	date, err := model.ParseDate(slot.Date)
	if err != nil {
		return false, err
	}

	tag, err := r.pool.Exec(ctx, query, date, slot.StartTime, slot.EndTime, slot.Status, slot.UserID)
	if err != nil {
		return false, fmt.Errorf("create slot: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *SlotRepository) querySlots(ctx context.Context, op, query, date string) ([]model.Slot, error) {
	d, err := model.ParseDate(date)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, query, d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	return scanSlots(rows, op)
}

func (r *SlotRepository) execOnSlot(ctx context.Context, op, query string, id model.SlotID) (bool, error) {
	date, err := model.ParseDate(id.Date)
	if err != nil {
		return false, err
	}

	tag, err := r.pool.Exec(ctx, query, date, id.Start, id.End)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return tag.RowsAffected() == 1, nil
}
