package model

import "time"

type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "available"
	SlotStatusBooked    SlotStatus = "booked"
	SlotStatusBlocked   SlotStatus = "blocked"
)

type Slot struct {
	ID        int64      `json:"id"`
	Date      string     `json:"date"`       // YYYY-MM-DD
	StartTime string     `json:"start_time"` // HH:MM
	EndTime   string     `json:"end_time"`   // HH:MM
	Status    SlotStatus `json:"status"`
	UserID    *string    `json:"user_id"` // set iff Status == booked
	CreatedAt time.Time  `json:"created_at"`
}

// SlotID returns the canonical identity of the slot.
func (s Slot) SlotID() SlotID {
	return SlotID{Date: s.Date, Start: s.StartTime, End: s.EndTime}
}
