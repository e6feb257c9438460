package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/yuchiehk/coachbot/internal/model"
)

// BookingLister lists the booked slots of one date.
type BookingLister interface {
	ListBookedByDate(ctx context.Context, date string) ([]model.Slot, error)
}

// ReminderPusher delivers reminder messages. Implemented by the
// transport layer.
type ReminderPusher interface {
	PushStudentReminder(ctx context.Context, userID string, slot model.Slot) error
	PushCoachSummary(ctx context.Context, coachID, date string, bookings []model.Slot) error
}

// ReminderService sends the next-day reminders: one card per student
// with a booking, and a day summary to the coach.
type ReminderService struct {
	slots    BookingLister
	pusher   ReminderPusher
	coachIDs []string
	logger   *zap.Logger
}

func NewReminderService(slots BookingLister, pusher ReminderPusher, coachIDs []string, logger *zap.Logger) *ReminderService {
	return &ReminderService{
		slots:    slots,
		pusher:   pusher,
		coachIDs: coachIDs,
		logger:   logger,
	}
}

// SendDailyReminders pushes reminders for every booking on date. A
// failed push is logged and skipped; one unreachable student must not
// block the rest of the run.
func (s *ReminderService) SendDailyReminders(ctx context.Context, date string) error {
	bookings, err := s.slots.ListBookedByDate(ctx, date)
	if err != nil {
		return err
	}

	for _, slot := range bookings {
		if slot.UserID == nil {
			continue
		}

		if err := s.pusher.PushStudentReminder(ctx, *slot.UserID, slot); err != nil {
			s.logger.Error("failed to push student reminder",
				zap.String("user_id", *slot.UserID),
				zap.String("slot", slot.SlotID().String()),
				zap.Error(err))
		}
	}

	// The coach gets the summary even on an empty day.
	for _, coachID := range s.coachIDs {
		if err := s.pusher.PushCoachSummary(ctx, coachID, date, bookings); err != nil {
			s.logger.Error("failed to push coach summary",
				zap.String("coach_id", coachID),
				zap.Error(err))
		}
	}

	s.logger.Info("daily reminders sent",
		zap.String("date", date),
		zap.Int("bookings", len(bookings)))

	return nil
}
