package get_available_slots

import (
	"time"

	"github.com/tapcafe/TapCafe-SlotService/pkg/types"
)

// Request модель запроса доступных слотов
type Request struct {
	CafeID int64     // ID кафе
	Date   time.Time // Дата выдачи (без времени)
}

// SlotView представление слота для выбора на чекауте
// Заблокированные и заполненные слоты возвращаются с флагами, чтобы UI
// мог показать их перечеркнутыми; прошедшие по времени слоты не возвращаются вовсе
type SlotView struct {
	ID          int64
	SlotTime    types.TimeString
	MaxOrders   int
	BookedCount int
	IsBlocked   bool
	IsFull      bool
}

// Response модель ответа со слотами на дату
type Response struct {
	CafeID int64
	Date   time.Time
	Slots  []SlotView
}
