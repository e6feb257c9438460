package model

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// SlotID is the canonical slot identity: (date, start, end).
// Its string form "YYYY-MM-DDTHH:MM-HH:MM" is the only representation
// that crosses the transport boundary (postback data, session cache).
type SlotID struct {
	Date  string // YYYY-MM-DD
	Start string // HH:MM
	End   string // HH:MM
}

func (id SlotID) String() string {
	return id.Date + "T" + id.Start + "-" + id.End
}

// ParseSlotID parses the boundary form of a slot identity.
func ParseSlotID(s string) (SlotID, error) {
	date, times, ok := strings.Cut(s, "T")
	if !ok {
		return SlotID{}, fmt.Errorf("parse slot id %q: missing date separator", s)
	}

	start, end, ok := strings.Cut(times, "-")
	if !ok {
		return SlotID{}, fmt.Errorf("parse slot id %q: missing time separator", s)
	}

	if _, err := time.Parse(DateLayout, date); err != nil {
		return SlotID{}, fmt.Errorf("parse slot id %q: bad date: %w", s, err)
	}
	if _, err := time.Parse(TimeLayout, start); err != nil {
		return SlotID{}, fmt.Errorf("parse slot id %q: bad start time: %w", s, err)
	}
	if _, err := time.Parse(TimeLayout, end); err != nil {
		return SlotID{}, fmt.Errorf("parse slot id %q: bad end time: %w", s, err)
	}

	return SlotID{Date: date, Start: start, End: end}, nil
}

// ParseDate parses a boundary-form calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return d, nil
}
