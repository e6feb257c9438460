package service

import "github.com/yuchiehk/coachbot/internal/model"

// Outcome tags what happened to a user action. Every outcome maps to
// exactly one message template in the transport layer, so conflicts
// (slot taken, not yours) are never blurred into validation failures.
type Outcome string

const (
	OutcomeDatesList        Outcome = "dates_list"
	OutcomeNoDates          Outcome = "no_dates"
	OutcomeDaySlots         Outcome = "day_slots"
	OutcomeNoSlots          Outcome = "no_slots"
	OutcomeConfirmPrompt    Outcome = "confirm_prompt"
	OutcomeBookingConfirmed Outcome = "booking_confirmed"
	OutcomeSlotTaken        Outcome = "slot_taken"
	OutcomeExpiredSelection Outcome = "expired_selection"
	OutcomeInvalidSlot      Outcome = "invalid_slot"
	OutcomeBookingsList     Outcome = "bookings_list"
	OutcomeNoBookings       Outcome = "no_bookings"
	OutcomeCancelPrompt     Outcome = "cancel_prompt"
	OutcomeCancelConfirmed  Outcome = "cancel_confirmed"
	OutcomeCancelFailed     Outcome = "cancel_failed"
	OutcomeCoachDay         Outcome = "coach_day"
	OutcomeCoachDayEmpty    Outcome = "coach_day_empty"
	OutcomeCoachReport      Outcome = "coach_report"
	OutcomeLockConfirmed    Outcome = "lock_confirmed"
	OutcomeUnlockConfirmed  Outcome = "unlock_confirmed"
	OutcomeSlotNotFound     Outcome = "slot_not_found"
	OutcomeOverrideSaved    Outcome = "override_saved"
)

// Result is the structured answer the engine hands back to the
// transport layer, which renders it into platform messages.
type Result struct {
	Outcome Outcome
	Dates   []string
	Date    string
	Slot    model.SlotID
	Slots   []model.Slot
	Days    []model.DayStatus
}
