package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/yuchiehk/coachbot/internal/model"
)

// fakeStore is an in-memory SlotStore and OverrideStore with the same
// conditional-transition semantics as the SQL repositories. A mutex
// guards every transition, so the concurrency properties the real
// store gets from single UPDATE statements hold here too.
type fakeStore struct {
	mu        sync.Mutex
	slots     map[model.SlotID]*model.Slot
	overrides map[string]model.DateOverride
	err       error // when set, every method fails with it
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		slots:     make(map[model.SlotID]*model.Slot),
		overrides: make(map[string]model.DateOverride),
	}
}

func (f *fakeStore) add(date, start, end string, status model.SlotStatus, userID string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	slot := &model.Slot{
		ID:        int64(len(f.slots) + 1),
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Status:    status,
	}
	if userID != "" {
		slot.UserID = &userID
	}
	f.slots[slot.SlotID()] = slot
}

func (f *fakeStore) get(id model.SlotID) model.Slot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.slots[id]
}

func (f *fakeStore) ListAvailableDates(ctx context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}

	seen := make(map[string]bool)
	var dates []string
	for _, s := range f.slots {
		if s.Status == model.SlotStatusAvailable && !seen[s.Date] {
			seen[s.Date] = true
			dates = append(dates, s.Date)
		}
	}
	sort.Strings(dates)
	return dates, nil
}

func (f *fakeStore) ListAvailableSlots(ctx context.Context, date string) ([]model.Slot, error) {
	return f.listSlots(date, func(s *model.Slot) bool {
		return s.Status == model.SlotStatusAvailable
	})
}

func (f *fakeStore) ListAllSlots(ctx context.Context, date string) ([]model.Slot, error) {
	return f.listSlots(date, func(s *model.Slot) bool { return true })
}

func (f *fakeStore) ListBookedByDate(ctx context.Context, date string) ([]model.Slot, error) {
	return f.listSlots(date, func(s *model.Slot) bool {
		return s.Status == model.SlotStatusBooked
	})
}

func (f *fakeStore) listSlots(date string, keep func(*model.Slot) bool) ([]model.Slot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}

	var slots []model.Slot
	for _, s := range f.slots {
		if s.Date == date && keep(s) {
			slots = append(slots, *s)
		}
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].StartTime < slots[j].StartTime })
	return slots, nil
}

func (f *fakeStore) ListUserBookings(ctx context.Context, userID string) ([]model.Slot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}

	var slots []model.Slot
	for _, s := range f.slots {
		if s.Status == model.SlotStatusBooked && s.UserID != nil && *s.UserID == userID {
			slots = append(slots, *s)
		}
	}
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Date != slots[j].Date {
			return slots[i].Date < slots[j].Date
		}
		return slots[i].StartTime < slots[j].StartTime
	})
	return slots, nil
}

func (f *fakeStore) TryBook(ctx context.Context, id model.SlotID, userID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}

	s, ok := f.slots[id]
	if !ok || s.Status != model.SlotStatusAvailable {
		return false, nil
	}
	s.Status = model.SlotStatusBooked
	s.UserID = &userID
	return true, nil
}

func (f *fakeStore) TryCancel(ctx context.Context, id model.SlotID, userID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}

	s, ok := f.slots[id]
	if !ok || s.Status != model.SlotStatusBooked || s.UserID == nil || *s.UserID != userID {
		return false, nil
	}
	s.Status = model.SlotStatusAvailable
	s.UserID = nil
	return true, nil
}

func (f *fakeStore) Lock(ctx context.Context, id model.SlotID) (bool, error) {
	return f.force(id, model.SlotStatusBlocked)
}

func (f *fakeStore) Unlock(ctx context.Context, id model.SlotID) (bool, error) {
	return f.force(id, model.SlotStatusAvailable)
}

func (f *fakeStore) force(id model.SlotID, status model.SlotStatus) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}

	s, ok := f.slots[id]
	if !ok {
		return false, nil
	}
	s.Status = status
	s.UserID = nil
	return true, nil
}

func (f *fakeStore) CreateIfAbsent(ctx context.Context, slot model.Slot) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}

	id := slot.SlotID()
	if _, ok := f.slots[id]; ok {
		return false, nil
	}
	copied := slot
	copied.ID = int64(len(f.slots) + 1)
	f.slots[id] = &copied
	return true, nil
}

func (f *fakeStore) Get(ctx context.Context, date string) (*model.DateOverride, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}

	if ov, ok := f.overrides[date]; ok {
		return &ov, nil
	}
	return nil, nil
}

func (f *fakeStore) GetRange(ctx context.Context, from string, days int) (map[string]model.DateOverride, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}

	start, err := model.ParseDate(from)
	if err != nil {
		return nil, err
	}
	end := start.AddDate(0, 0, days)

	out := make(map[string]model.DateOverride)
	for key, ov := range f.overrides {
		d, err := model.ParseDate(key)
		if err != nil {
			return nil, err
		}
		if !d.Before(start) && d.Before(end) {
			out[key] = ov
		}
	}
	return out, nil
}

func (f *fakeStore) Upsert(ctx context.Context, ov model.DateOverride) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}

	ov.UpdatedAt = time.Now()
	f.overrides[ov.Date] = ov
	return nil
}
