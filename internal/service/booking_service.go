package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/yuchiehk/coachbot/internal/model"
	"github.com/yuchiehk/coachbot/internal/session"
)

// BookingService drives the reservation protocol: pick a date, pick a
// slot, confirm, and the mirror cancel flow. Every entry point returns
// a tagged Result; an error return means the store failed and the
// request should answer with a generic apology.
type BookingService struct {
	availability *AvailabilityService
	slots        SlotStore
	sessions     *session.Store
	logger       *zap.Logger
}

func NewBookingService(availability *AvailabilityService, slots SlotStore, sessions *session.Store, logger *zap.Logger) *BookingService {
	return &BookingService{
		availability: availability,
		slots:        slots,
		sessions:     sessions,
		logger:       logger,
	}
}

// Dates answers "I want to book": the open dates that still have room.
func (s *BookingService) Dates(ctx context.Context) (Result, error) {
	dates, err := s.availability.AvailableDates(ctx)
	if err != nil {
		return Result{}, err
	}

	if len(dates) == 0 {
		return Result{Outcome: OutcomeNoDates}, nil
	}

	return Result{Outcome: OutcomeDatesList, Dates: dates}, nil
}

// DaySlots answers a date pick with the bookable slots for that date.
func (s *BookingService) DaySlots(ctx context.Context, date string) (Result, error) {
	if _, err := model.ParseDate(date); err != nil {
		s.logger.Warn("rejected malformed date", zap.String("date", date), zap.Error(err))
		return Result{Outcome: OutcomeInvalidSlot}, nil
	}

	slots, err := s.availability.AvailableSlots(ctx, date)
	if err != nil {
		return Result{}, err
	}

	if len(slots) == 0 {
		return Result{Outcome: OutcomeNoSlots, Date: date}, nil
	}

	return Result{Outcome: OutcomeDaySlots, Date: date, Slots: slots}, nil
}

// SelectSlot validates a slot pick and records it as the user's pending
// selection. The slot must currently be listed as available; stale
// identities are rejected without touching the store. Only the session
// cache changes here.
func (s *BookingService) SelectSlot(ctx context.Context, userID, rawID string) (Result, error) {
	id, err := model.ParseSlotID(rawID)
	if err != nil {
		s.logger.Warn("rejected malformed slot id", zap.String("slot", rawID), zap.Error(err))
		return Result{Outcome: OutcomeInvalidSlot}, nil
	}

	slots, err := s.availability.AvailableSlots(ctx, id.Date)
	if err != nil {
		return Result{}, err
	}

	for _, slot := range slots {
		if slot.SlotID() == id {
			s.sessions.Put(userID, id.String())
			return Result{Outcome: OutcomeConfirmPrompt, Slot: id}, nil
		}
	}

	return Result{Outcome: OutcomeSlotTaken, Slot: id}, nil
}

// Confirm books the pending selection. The confirm is honored only when
// it names the exact slot cached for this user; otherwise the selection
// has expired and the store is left untouched. Losing the race to
// another confirmer is a normal outcome, not an error: the user simply
// restarts from date selection.
func (s *BookingService) Confirm(ctx context.Context, userID, rawID string) (Result, error) {
	id, err := model.ParseSlotID(rawID)
	if err != nil {
		s.logger.Warn("rejected malformed slot id", zap.String("slot", rawID), zap.Error(err))
		return Result{Outcome: OutcomeInvalidSlot}, nil
	}

	if !s.sessions.TakeIfMatch(userID, id.String()) {
		return Result{Outcome: OutcomeExpiredSelection, Slot: id}, nil
	}

	booked, err := s.slots.TryBook(ctx, id, userID)
	if err != nil {
		return Result{}, err
	}

	if !booked {
		s.logger.Info("slot lost to another confirmer",
			zap.String("slot", id.String()),
			zap.String("user_id", userID))
		return Result{Outcome: OutcomeSlotTaken, Slot: id}, nil
	}

	s.logger.Info("slot booked",
		zap.String("slot", id.String()),
		zap.String("user_id", userID))

	return Result{Outcome: OutcomeBookingConfirmed, Slot: id}, nil
}

// Bookings answers "I want to cancel" with the user's current bookings.
func (s *BookingService) Bookings(ctx context.Context, userID string) (Result, error) {
	bookings, err := s.availability.UserBookings(ctx, userID)
	if err != nil {
		return Result{}, err
	}

	if len(bookings) == 0 {
		return Result{Outcome: OutcomeNoBookings}, nil
	}

	return Result{Outcome: OutcomeBookingsList, Slots: bookings}, nil
}

// SelectCancelTarget validates that the picked slot really is one of
// the user's bookings before asking for the final confirmation.
func (s *BookingService) SelectCancelTarget(ctx context.Context, userID, rawID string) (Result, error) {
	id, err := model.ParseSlotID(rawID)
	if err != nil {
		s.logger.Warn("rejected malformed slot id", zap.String("slot", rawID), zap.Error(err))
		return Result{Outcome: OutcomeInvalidSlot}, nil
	}

	bookings, err := s.availability.UserBookings(ctx, userID)
	if err != nil {
		return Result{}, err
	}

	for _, slot := range bookings {
		if slot.SlotID() == id {
			return Result{Outcome: OutcomeCancelPrompt, Slot: id}, nil
		}
	}

	return Result{Outcome: OutcomeCancelFailed, Slot: id}, nil
}

// ConfirmCancel releases a booking. A false store result means the slot
// is not booked by this user anymore (already cancelled, or never
// theirs); that is reported, never silently dropped.
func (s *BookingService) ConfirmCancel(ctx context.Context, userID, rawID string) (Result, error) {
	id, err := model.ParseSlotID(rawID)
	if err != nil {
		s.logger.Warn("rejected malformed slot id", zap.String("slot", rawID), zap.Error(err))
		return Result{Outcome: OutcomeInvalidSlot}, nil
	}

	cancelled, err := s.slots.TryCancel(ctx, id, userID)
	if err != nil {
		return Result{}, err
	}

	if !cancelled {
		return Result{Outcome: OutcomeCancelFailed, Slot: id}, nil
	}

	s.logger.Info("booking cancelled",
		zap.String("slot", id.String()),
		zap.String("user_id", userID))

	return Result{Outcome: OutcomeCancelConfirmed, Slot: id}, nil
}
