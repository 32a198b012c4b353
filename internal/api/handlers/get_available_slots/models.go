package get_available_slots

import (
	"time"

	"github.com/tapcafe/TapCafe-SlotService/internal/domain"
	getAvailableSlots "github.com/tapcafe/TapCafe-SlotService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	CafeID int64      `json:"cafeId"`
	Date   string     `json:"date"`
	Slots  []SlotView `json:"slots"`
}

// SlotView модель слота выдачи для чекаута
type SlotView struct {
	ID          int64  `json:"id"`
	SlotTime    string `json:"slotTime"`
	MaxOrders   int    `json:"maxOrders"`
	BookedCount int    `json:"bookedCount"`
	IsBlocked   bool   `json:"isBlocked"`
	IsFull      bool   `json:"isFull"`
}

// ToUseCaseRequest создает запрос use case из path/query параметров
func ToUseCaseRequest(cafeID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		CafeID: cafeID,
		Date:   date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotView, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotView{
			ID:          slot.ID,
			SlotTime:    slot.SlotTime.String(),
			MaxOrders:   slot.MaxOrders,
			BookedCount: slot.BookedCount,
			IsBlocked:   slot.IsBlocked,
			IsFull:      slot.IsFull,
		}
	}

	return &AvailableSlotsResponse{
		CafeID: resp.CafeID,
		Date:   resp.Date.Format(domain.DateFormat),
		Slots:  slots,
	}
}
