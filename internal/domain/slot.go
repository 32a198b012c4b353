package domain

import (
	"time"

	"github.com/tapcafe/TapCafe-SlotService/pkg/types"
)

// SlotTemplate represents a recurring pickup slot definition for a cafe.
// Templates are date-agnostic: one template produces one availability row
// per calendar date the first time that date is requested.
type SlotTemplate struct {
	ID        int64
	CafeID    int64
	SlotTime  types.TimeString
	MaxOrders int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SlotAvailability represents the per-date booking ledger for one slot.
// Identity is (CafeID, SlotDate, SlotTime). Capacity is copied from the
// template at materialization time and is not live-linked: later template
// edits or deletion do not touch already-materialized rows.
type SlotAvailability struct {
	ID          int64
	CafeID      int64
	TemplateID  *int64 // nil, если шаблон был удалён после материализации
	SlotDate    time.Time
	SlotTime    types.TimeString
	MaxOrders   int
	BookedCount int
	IsBlocked   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsFull returns true if the slot has no remaining capacity
func (s *SlotAvailability) IsFull() bool {
	return s.BookedCount >= s.MaxOrders
}

// IsBookable returns true if the slot can accept one more booking
func (s *SlotAvailability) IsBookable() bool {
	return !s.IsBlocked && !s.IsFull()
}

// RemainingSpots returns the number of free spots, floored at 0
func (s *SlotAvailability) RemainingSpots() int {
	remaining := s.MaxOrders - s.BookedCount
	if remaining < 0 {
		return 0
	}
	return remaining
}
