package service

import (
	"context"

	"github.com/yuchiehk/coachbot/internal/model"
)

// SlotStore is what the services need from the durable slot table. The
// conditional transitions report precondition failure as a false
// result; an error always means the store itself failed.
type SlotStore interface {
	ListAvailableDates(ctx context.Context) ([]string, error)
	ListAvailableSlots(ctx context.Context, date string) ([]model.Slot, error)
	ListAllSlots(ctx context.Context, date string) ([]model.Slot, error)
	ListUserBookings(ctx context.Context, userID string) ([]model.Slot, error)
	TryBook(ctx context.Context, id model.SlotID, userID string) (bool, error)
	TryCancel(ctx context.Context, id model.SlotID, userID string) (bool, error)
	Lock(ctx context.Context, id model.SlotID) (bool, error)
	Unlock(ctx context.Context, id model.SlotID) (bool, error)
	CreateIfAbsent(ctx context.Context, slot model.Slot) (bool, error)
}

// OverrideStore is the per-date open/closed exception table.
type OverrideStore interface {
	Get(ctx context.Context, date string) (*model.DateOverride, error)
	GetRange(ctx context.Context, from string, days int) (map[string]model.DateOverride, error)
	Upsert(ctx context.Context, ov model.DateOverride) error
}
