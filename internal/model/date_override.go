package model

import "time"

type OverrideStatus string

const (
	OverrideStatusOpen   OverrideStatus = "open"
	OverrideStatusClosed OverrideStatus = "closed"
)

// DateOverride is an explicit open/closed exception to the default
// weekly pattern for a single calendar date. Absence of a row means
// the default pattern applies.
type DateOverride struct {
	Date      string         `json:"date"` // YYYY-MM-DD
	Status    OverrideStatus `json:"status"`
	Reason    string         `json:"reason"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type DayStatusSource string

const (
	DaySourceDefault  DayStatusSource = "default"
	DaySourceOverride DayStatusSource = "override"
)

// DayStatus is one row of the coach schedule report: a date, whether
// it is open, and which rule decided that.
type DayStatus struct {
	Date   string          `json:"date"`
	Status OverrideStatus  `json:"status"`
	Source DayStatusSource `json:"source"`
}
