package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/yuchiehk/coachbot/internal/model"
)

// SlotWindow is one bookable window of the coach's day.
type SlotWindow struct {
	Start string // HH:MM
	End   string // HH:MM
}

// FixedClass is a recurring class of the coach's own. Its slots are
// generated as blocked so students can never book them.
type FixedClass struct {
	Weekday time.Weekday
	Start   string
	End     string
}

// DefaultDailyWindows is the coach's teachable hours on an open day.
var DefaultDailyWindows = []SlotWindow{
	{Start: "10:00", End: "11:00"},
	{Start: "11:00", End: "12:00"},
	{Start: "14:00", End: "15:00"},
	{Start: "15:00", End: "16:00"},
	{Start: "19:00", End: "20:00"},
}

// DefaultFixedClasses are the standing classes reserved every week.
var DefaultFixedClasses = []FixedClass{
	{Weekday: time.Monday, Start: "19:00", End: "20:00"},
	{Weekday: time.Friday, Start: "17:00", End: "17:45"},
}

// CoachService is the operator side: raw day views, the open/closed
// range report, forced lock/unlock, date overrides, and bulk slot
// generation.
type CoachService struct {
	availability *AvailabilityService
	slots        SlotStore
	overrides    OverrideStore
	windows      []SlotWindow
	fixed        []FixedClass
	logger       *zap.Logger
}

func NewCoachService(availability *AvailabilityService, slots SlotStore, overrides OverrideStore, logger *zap.Logger) *CoachService {
	return &CoachService{
		availability: availability,
		slots:        slots,
		overrides:    overrides,
		windows:      DefaultDailyWindows,
		fixed:        DefaultFixedClasses,
		logger:       logger,
	}
}

// Day returns the raw schedule for one date.
func (s *CoachService) Day(ctx context.Context, date string) (Result, error) {
	if _, err := model.ParseDate(date); err != nil {
		return Result{Outcome: OutcomeInvalidSlot}, nil
	}

	slots, err := s.availability.DaySchedule(ctx, date)
	if err != nil {
		return Result{}, err
	}

	if len(slots) == 0 {
		return Result{Outcome: OutcomeCoachDayEmpty, Date: date}, nil
	}

	return Result{Outcome: OutcomeCoachDay, Date: date, Slots: slots}, nil
}

// Report tags the next days dates with open/closed and the deciding rule.
func (s *CoachService) Report(ctx context.Context, from string, days int) (Result, error) {
	statuses, err := s.availability.ScheduleReport(ctx, from, days)
	if err != nil {
		return Result{}, err
	}

	return Result{Outcome: OutcomeCoachReport, Days: statuses}, nil
}

// Lock forces a slot into blocked, whatever its current state.
func (s *CoachService) Lock(ctx context.Context, rawID string) (Result, error) {
	id, err := model.ParseSlotID(rawID)
	if err != nil {
		return Result{Outcome: OutcomeInvalidSlot}, nil
	}

	found, err := s.slots.Lock(ctx, id)
	if err != nil {
		return Result{}, err
	}
	if !found {
		return Result{Outcome: OutcomeSlotNotFound, Slot: id}, nil
	}

	s.logger.Info("slot locked", zap.String("slot", id.String()))
	return Result{Outcome: OutcomeLockConfirmed, Slot: id}, nil
}

// Unlock forces a slot back to available, clearing any owner.
func (s *CoachService) Unlock(ctx context.Context, rawID string) (Result, error) {
	id, err := model.ParseSlotID(rawID)
	if err != nil {
		return Result{Outcome: OutcomeInvalidSlot}, nil
	}

	found, err := s.slots.Unlock(ctx, id)
	if err != nil {
		return Result{}, err
	}
	if !found {
		return Result{Outcome: OutcomeSlotNotFound, Slot: id}, nil
	}

	s.logger.Info("slot unlocked", zap.String("slot", id.String()))
	return Result{Outcome: OutcomeUnlockConfirmed, Slot: id}, nil
}

// SetOverride opens or closes a single date, overriding the weekly
// pattern.
func (s *CoachService) SetOverride(ctx context.Context, date string, status model.OverrideStatus, reason string) (Result, error) {
	if _, err := model.ParseDate(date); err != nil {
		return Result{Outcome: OutcomeInvalidSlot}, nil
	}

	ov := model.DateOverride{Date: date, Status: status, Reason: reason}
	if err := s.overrides.Upsert(ctx, ov); err != nil {
		return Result{}, err
	}

	s.logger.Info("date override saved",
		zap.String("date", date),
		zap.String("status", string(status)),
		zap.String("reason", reason))

	return Result{Outcome: OutcomeOverrideSaved, Date: date}, nil
}

// GenerateSlots creates the slot rows for weeks full weeks starting at
// from: the daily windows on every date, plus the fixed classes as
// blocked rows. Inserts are conditional on identity, so re-running a
// generation never touches rows that already exist, booked or not.
func (s *CoachService) GenerateSlots(ctx context.Context, from time.Time, weeks int) (int, error) {
	created := 0

	for i := 0; i < weeks*7; i++ {
		date := from.AddDate(0, 0, i)
		dateStr := date.Format(model.DateLayout)

		for _, w := range s.windows {
			status := model.SlotStatusAvailable
			if s.isFixedClass(date.Weekday(), w.Start) {
				status = model.SlotStatusBlocked
			}

			ok, err := s.slots.CreateIfAbsent(ctx, model.Slot{
				Date:      dateStr,
				StartTime: w.Start,
				EndTime:   w.End,
				Status:    status,
			})
			if err != nil {
				return created, err
			}
			if ok {
				created++
			}
		}

		// Fixed classes outside the daily windows still need a blocked row.
		for _, fc := range s.fixed {
			if fc.Weekday != date.Weekday() || s.inWindows(fc.Start) {
				continue
			}

			ok, err := s.slots.CreateIfAbsent(ctx, model.Slot{
				Date:      dateStr,
				StartTime: fc.Start,
				EndTime:   fc.End,
				Status:    model.SlotStatusBlocked,
			})
			if err != nil {
				return created, err
			}
			if ok {
				created++
			}
		}
	}

	s.logger.Info("slot generation finished",
		zap.String("from", from.Format(model.DateLayout)),
		zap.Int("weeks", weeks),
		zap.Int("created", created))

	return created, nil
}

func (s *CoachService) isFixedClass(weekday time.Weekday, start string) bool {
	for _, fc := range s.fixed {
		if fc.Weekday == weekday && fc.Start == start {
			return true
		}
	}
	return false
}

func (s *CoachService) inWindows(start string) bool {
	for _, w := range s.windows {
		if w.Start == start {
			return true
		}
	}
	return false
}
