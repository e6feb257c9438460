package service

import (
	"time"

	"github.com/yuchiehk/coachbot/internal/model"
)

// RuleEvaluator decides whether a calendar date is open for booking.
// An explicit override for the date always wins; otherwise the default
// weekly pattern applies. It holds no mutable state, so it is safe to
// call from any number of handlers without locking.
type RuleEvaluator struct {
	openWeekdays map[time.Weekday]bool
}

func NewRuleEvaluator(open []time.Weekday) *RuleEvaluator {
	weekdays := make(map[time.Weekday]bool, len(open))
	for _, d := range open {
		weekdays[d] = true
	}
	return &RuleEvaluator{openWeekdays: weekdays}
}

// IsOpen reports whether date is bookable given the override for that
// date, or nil when none exists.
func (e *RuleEvaluator) IsOpen(date time.Time, override *model.DateOverride) bool {
	if override != nil {
		return override.Status == model.OverrideStatusOpen
	}
	return e.openWeekdays[date.Weekday()]
}

// StatusForRange enumerates exactly days consecutive dates starting at
// start, each tagged with its open/closed status and whether the
// default pattern or an override decided it.
func (e *RuleEvaluator) StatusForRange(start time.Time, days int, overrides map[string]model.DateOverride) []model.DayStatus {
	statuses := make([]model.DayStatus, 0, days)

	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		key := date.Format(model.DateLayout)

		day := model.DayStatus{
			Date:   key,
			Status: model.OverrideStatusClosed,
			Source: model.DaySourceDefault,
		}

		if ov, ok := overrides[key]; ok {
			day.Status = ov.Status
			day.Source = model.DaySourceOverride
		} else if e.openWeekdays[date.Weekday()] {
			day.Status = model.OverrideStatusOpen
		}

		statuses = append(statuses, day)
	}

	return statuses
}
