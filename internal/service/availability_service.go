package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/yuchiehk/coachbot/internal/model"
)

// AvailabilityService composes the slot store with the calendar rules.
// The store only knows slot states; whether a date is bookable at all
// is decided here, so an override can close a day even while available
// rows still exist for it.
type AvailabilityService struct {
	slots     SlotStore
	overrides OverrideStore
	rules     *RuleEvaluator
	logger    *zap.Logger
}

func NewAvailabilityService(slots SlotStore, overrides OverrideStore, rules *RuleEvaluator, logger *zap.Logger) *AvailabilityService {
	return &AvailabilityService{
		slots:     slots,
		overrides: overrides,
		rules:     rules,
		logger:    logger,
	}
}

// AvailableDates returns the dates a student may book, ascending:
// dates with at least one available slot, minus the ones the calendar
// rules say are closed.
func (s *AvailabilityService) AvailableDates(ctx context.Context) ([]string, error) {
	dates, err := s.slots.ListAvailableDates(ctx)
	if err != nil {
		return nil, err
	}
	if len(dates) == 0 {
		return nil, nil
	}

	first, err := model.ParseDate(dates[0])
	if err != nil {
		return nil, err
	}
	last, err := model.ParseDate(dates[len(dates)-1])
	if err != nil {
		return nil, err
	}

	span := int(last.Sub(first).Hours()/24) + 1
	overrides, err := s.overrides.GetRange(ctx, dates[0], span)
	if err != nil {
		return nil, err
	}

	open := make([]string, 0, len(dates))
	for _, date := range dates {
		d, err := model.ParseDate(date)
		if err != nil {
			return nil, err
		}

		var ov *model.DateOverride
		if o, ok := overrides[date]; ok {
			ov = &o
		}

		if s.rules.IsOpen(d, ov) {
			open = append(open, date)
		}
	}

	return open, nil
}

// AvailableSlots returns the bookable slots for one date, ordered by
// start time. A date the calendar rules close yields no slots even if
// available rows exist.
func (s *AvailabilityService) AvailableSlots(ctx context.Context, date string) ([]model.Slot, error) {
	d, err := model.ParseDate(date)
	if err != nil {
		return nil, err
	}

	ov, err := s.overrides.Get(ctx, date)
	if err != nil {
		return nil, err
	}

	if !s.rules.IsOpen(d, ov) {
		s.logger.Debug("date closed by calendar rules", zap.String("date", date))
		return nil, nil
	}

	return s.slots.ListAvailableSlots(ctx, date)
}

// UserBookings returns the slots a user currently has booked, ordered
// by date then start time.
func (s *AvailabilityService) UserBookings(ctx context.Context, userID string) ([]model.Slot, error) {
	return s.slots.ListUserBookings(ctx, userID)
}

// DaySchedule returns the raw state of every slot on a date for the
// coach. No calendar filtering: the operator must see what is actually
// stored.
func (s *AvailabilityService) DaySchedule(ctx context.Context, date string) ([]model.Slot, error) {
	if _, err := model.ParseDate(date); err != nil {
		return nil, err
	}
	return s.slots.ListAllSlots(ctx, date)
}

// ScheduleReport tags each of the next days dates with its open/closed
// status and the rule that decided it.
func (s *AvailabilityService) ScheduleReport(ctx context.Context, from string, days int) ([]model.DayStatus, error) {
	if days <= 0 {
		return nil, fmt.Errorf("schedule report: days must be positive, got %d", days)
	}

	start, err := model.ParseDate(from)
	if err != nil {
		return nil, err
	}

	overrides, err := s.overrides.GetRange(ctx, from, days)
	if err != nil {
		return nil, err
	}

	return s.rules.StatusForRange(start, days, overrides), nil
}
