package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/yuchiehk/coachbot/internal/model"
	"github.com/yuchiehk/coachbot/internal/service"
)

// Scheduler runs the background tasks: keeping future slots generated
// and sending the next-day reminders.
type Scheduler struct {
	coach        *service.CoachService
	reminders    *service.ReminderService
	weeksAhead   int
	reminderHour int
	logger       *zap.Logger
	stopChan     chan struct{}
}

func NewScheduler(coach *service.CoachService, reminders *service.ReminderService, weeksAhead, reminderHour int, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		coach:        coach,
		reminders:    reminders,
		weeksAhead:   weeksAhead,
		reminderHour: reminderHour,
		logger:       logger,
		stopChan:     make(chan struct{}),
	}
}

// Start launches the background tasks.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting background scheduler")

	go s.runSlotGenerationTask(ctx)
	go s.runReminderTask(ctx)
}

// Stop stops the background tasks.
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping background scheduler")
	close(s.stopChan)
}

// runSlotGenerationTask generates slots daily so the calendar always
// reaches weeksAhead weeks into the future.
func (s *Scheduler) runSlotGenerationTask(ctx context.Context) {
	s.generateSlots(ctx)

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.generateSlots(ctx)
		case <-s.stopChan:
			s.logger.Info("Slot generation task stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Slot generation task cancelled")
			return
		}
	}
}

func (s *Scheduler) generateSlots(ctx context.Context) {
	from := time.Now().AddDate(0, 0, 1)

	created, err := s.coach.GenerateSlots(ctx, from, s.weeksAhead)
	if err != nil {
		s.logger.Error("Failed to generate slots", zap.Error(err))
		return
	}

	s.logger.Info("Automatic slot generation completed", zap.Int("created", created))
}

// runReminderTask fires once a day at the configured hour and sends
// the reminders for tomorrow's bookings.
func (s *Scheduler) runReminderTask(ctx context.Context) {
	for {
		timer := time.NewTimer(time.Until(s.nextReminderAt(time.Now())))

		select {
		case <-timer.C:
			s.sendReminders(ctx)
		case <-s.stopChan:
			timer.Stop()
			s.logger.Info("Reminder task stopped")
			return
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("Reminder task cancelled")
			return
		}
	}
}

// nextReminderAt returns the next occurrence of the reminder hour
// strictly after now.
func (s *Scheduler) nextReminderAt(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), s.reminderHour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

func (s *Scheduler) sendReminders(ctx context.Context) {
	tomorrow := time.Now().AddDate(0, 0, 1).Format(model.DateLayout)

	if err := s.reminders.SendDailyReminders(ctx, tomorrow); err != nil {
		s.logger.Error("Failed to send reminders", zap.Error(err))
	}
}
