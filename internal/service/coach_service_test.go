package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yuchiehk/coachbot/internal/model"
)

func newCoachHarness() (*CoachService, *fakeStore) {
	store := newFakeStore()
	logger := zap.NewNop()
	rules := NewRuleEvaluator([]time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday})
	availability := NewAvailabilityService(store, store, rules, logger)
	return NewCoachService(availability, store, store, logger), store
}

func TestGenerateSlotsCreatesWindowsAndFixedClasses(t *testing.T) {
	svc, store := newCoachHarness()
	ctx := context.Background()

	start, err := model.ParseDate("2024-06-03") // Monday
	require.NoError(t, err)

	created, err := svc.GenerateSlots(ctx, start, 1)
	require.NoError(t, err)
	// 7 days x 5 windows, plus the Friday 17:00 fixed class outside the windows.
	assert.Equal(t, 36, created)

	// Monday evening is a fixed class inside the windows: blocked.
	mondayEvening := store.get(model.SlotID{Date: "2024-06-03", Start: "19:00", End: "20:00"})
	assert.Equal(t, model.SlotStatusBlocked, mondayEvening.Status)

	// Tuesday evening is a plain window: available.
	tuesdayEvening := store.get(model.SlotID{Date: "2024-06-04", Start: "19:00", End: "20:00"})
	assert.Equal(t, model.SlotStatusAvailable, tuesdayEvening.Status)

	// The Friday fixed class has its own blocked row.
	fridayClass := store.get(model.SlotID{Date: "2024-06-07", Start: "17:00", End: "17:45"})
	assert.Equal(t, model.SlotStatusBlocked, fridayClass.Status)
}

func TestGenerateSlotsIsIdempotent(t *testing.T) {
	svc, store := newCoachHarness()
	ctx := context.Background()

	start, err := model.ParseDate("2024-06-03")
	require.NoError(t, err)

	_, err = svc.GenerateSlots(ctx, start, 1)
	require.NoError(t, err)

	// A booking made between runs must survive the re-run untouched.
	ok, err := store.TryBook(ctx, model.SlotID{Date: "2024-06-03", Start: "10:00", End: "11:00"}, "user-a")
	require.NoError(t, err)
	require.True(t, ok)

	created, err := svc.GenerateSlots(ctx, start, 1)
	require.NoError(t, err)
	assert.Zero(t, created)

	slot := store.get(model.SlotID{Date: "2024-06-03", Start: "10:00", End: "11:00"})
	assert.Equal(t, model.SlotStatusBooked, slot.Status)
	require.NotNil(t, slot.UserID)
	assert.Equal(t, "user-a", *slot.UserID)
}

func TestLockClearsOwner(t *testing.T) {
	svc, store := newCoachHarness()
	store.add("2024-06-03", "10:00", "11:00", model.SlotStatusBooked, "user-a")

	res, err := svc.Lock(context.Background(), "2024-06-03T10:00-11:00")
	require.NoError(t, err)
	assert.Equal(t, OutcomeLockConfirmed, res.Outcome)

	slot := store.get(res.Slot)
	assert.Equal(t, model.SlotStatusBlocked, slot.Status)
	assert.Nil(t, slot.UserID)
}

func TestUnlockReleasesBlockedSlot(t *testing.T) {
	svc, store := newCoachHarness()
	store.add("2024-06-03", "19:00", "20:00", model.SlotStatusBlocked, "")

	res, err := svc.Unlock(context.Background(), "2024-06-03T19:00-20:00")
	require.NoError(t, err)
	assert.Equal(t, OutcomeUnlockConfirmed, res.Outcome)

	slot := store.get(res.Slot)
	assert.Equal(t, model.SlotStatusAvailable, slot.Status)
	assert.Nil(t, slot.UserID)
}

func TestLockUnknownSlot(t *testing.T) {
	svc, _ := newCoachHarness()

	res, err := svc.Lock(context.Background(), "2024-06-03T08:00-09:00")
	require.NoError(t, err)
	assert.Equal(t, OutcomeSlotNotFound, res.Outcome)
}

func TestDayViewOutcomes(t *testing.T) {
	svc, store := newCoachHarness()
	ctx := context.Background()

	res, err := svc.Day(ctx, "2024-06-03")
	require.NoError(t, err)
	assert.Equal(t, OutcomeCoachDayEmpty, res.Outcome)

	store.add("2024-06-03", "10:00", "11:00", model.SlotStatusBooked, "user-a")
	res, err = svc.Day(ctx, "2024-06-03")
	require.NoError(t, err)
	assert.Equal(t, OutcomeCoachDay, res.Outcome)
	require.Len(t, res.Slots, 1)

	res, err = svc.Day(ctx, "garbage")
	require.NoError(t, err)
	assert.Equal(t, OutcomeInvalidSlot, res.Outcome)
}

func TestSetOverrideAffectsAvailability(t *testing.T) {
	svc, store := newCoachHarness()
	ctx := context.Background()

	store.add("2024-06-03", "10:00", "11:00", model.SlotStatusAvailable, "")

	res, err := svc.SetOverride(ctx, "2024-06-03", model.OverrideStatusClosed, "tournament")
	require.NoError(t, err)
	assert.Equal(t, OutcomeOverrideSaved, res.Outcome)

	dates, err := svc.availability.AvailableDates(ctx)
	require.NoError(t, err)
	assert.Empty(t, dates)
}
