package get_day_availability

import (
	"time"

	"github.com/tapcafe/TapCafe-SlotService/internal/domain"
)

// SlotView строка доступности в админском ответе
type SlotView struct {
	ID          int64  `json:"id"`
	TemplateID  *int64 `json:"templateId"`
	SlotTime    string `json:"slotTime"`
	MaxOrders   int    `json:"maxOrders"`
	BookedCount int    `json:"bookedCount"`
	IsBlocked   bool   `json:"isBlocked"`
	IsFull      bool   `json:"isFull"`
}

// DayAvailabilityResponse HTTP response model
type DayAvailabilityResponse struct {
	CafeID int64      `json:"cafeId"`
	Date   string     `json:"date"`
	Slots  []SlotView `json:"slots"`
}

// FromDomainSlots конвертирует строки доступности в HTTP response
func FromDomainSlots(cafeID int64, date time.Time, slots []*domain.SlotAvailability) *DayAvailabilityResponse {
	views := make([]SlotView, len(slots))
	for i, slot := range slots {
		views[i] = SlotView{
			ID:          slot.ID,
			TemplateID:  slot.TemplateID,
			SlotTime:    slot.SlotTime.String(),
			MaxOrders:   slot.MaxOrders,
			BookedCount: slot.BookedCount,
			IsBlocked:   slot.IsBlocked,
			IsFull:      slot.IsFull(),
		}
	}

	return &DayAvailabilityResponse{
		CafeID: cafeID,
		Date:   date.Format(domain.DateFormat),
		Slots:  views,
	}
}
