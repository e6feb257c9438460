package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yuchiehk/coachbot/internal/model"
)

type fakePusher struct {
	studentPushes []string // userID
	coachPushes   []string // coachID
	failFor       string   // userID whose push fails
}

func (p *fakePusher) PushStudentReminder(ctx context.Context, userID string, slot model.Slot) error {
	if userID == p.failFor {
		return errors.New("push failed")
	}
	p.studentPushes = append(p.studentPushes, userID)
	return nil
}

func (p *fakePusher) PushCoachSummary(ctx context.Context, coachID, date string, bookings []model.Slot) error {
	p.coachPushes = append(p.coachPushes, coachID)
	return nil
}

func TestSendDailyReminders(t *testing.T) {
	store := newFakeStore()
	store.add("2024-06-03", "10:00", "11:00", model.SlotStatusBooked, "user-a")
	store.add("2024-06-03", "11:00", "12:00", model.SlotStatusBooked, "user-b")
	store.add("2024-06-03", "14:00", "15:00", model.SlotStatusAvailable, "")
	store.add("2024-06-03", "19:00", "20:00", model.SlotStatusBlocked, "")

	pusher := &fakePusher{}
	svc := NewReminderService(store, pusher, []string{"coach-1"}, zap.NewNop())

	require.NoError(t, svc.SendDailyReminders(context.Background(), "2024-06-03"))
	assert.Equal(t, []string{"user-a", "user-b"}, pusher.studentPushes)
	assert.Equal(t, []string{"coach-1"}, pusher.coachPushes)
}

func TestSendDailyRemindersEmptyDayStillNotifiesCoach(t *testing.T) {
	store := newFakeStore()
	pusher := &fakePusher{}
	svc := NewReminderService(store, pusher, []string{"coach-1"}, zap.NewNop())

	require.NoError(t, svc.SendDailyReminders(context.Background(), "2024-06-03"))
	assert.Empty(t, pusher.studentPushes)
	assert.Equal(t, []string{"coach-1"}, pusher.coachPushes)
}

func TestSendDailyRemindersSkipsFailedPush(t *testing.T) {
	store := newFakeStore()
	store.add("2024-06-03", "10:00", "11:00", model.SlotStatusBooked, "user-a")
	store.add("2024-06-03", "11:00", "12:00", model.SlotStatusBooked, "user-b")

	pusher := &fakePusher{failFor: "user-a"}
	svc := NewReminderService(store, pusher, []string{"coach-1"}, zap.NewNop())

	require.NoError(t, svc.SendDailyReminders(context.Background(), "2024-06-03"))
	assert.Equal(t, []string{"user-b"}, pusher.studentPushes)
}
