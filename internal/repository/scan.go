package repository

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/yuchiehk/coachbot/internal/model"
)

// scanSlots drains a slot result set into model values. The date column
// comes back as a time.Time and is rendered into the boundary format so
// callers never see driver types.
func scanSlots(rows pgx.Rows, op string) ([]model.Slot, error) {
	var slots []model.Slot
	for rows.Next() {
		var (
			slot model.Slot
			date time.Time
		)

		err := rows.Scan(
			&slot.ID,
			&date,
			&slot.StartTime,
			&slot.EndTime,
			&slot.Status,
			&slot.UserID,
			&slot.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: scan slot: %w", op, err)
		}

		slot.Date = date.Format(model.DateLayout)
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return slots, nil
}
