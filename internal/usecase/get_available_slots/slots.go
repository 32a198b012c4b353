package get_available_slots

import (
	"time"

	"github.com/tapcafe/TapCafe-SlotService/internal/domain"
	"github.com/tapcafe/TapCafe-SlotService/pkg/types"
)

// filterSlots применяет правило временной фильтрации к строкам доступности:
//   - дата в прошлом: пустой список (бронирование в прошлое невозможно)
//   - будущая дата: все строки
//   - сегодня: только строки со временем >= текущего времени суток;
//     прошедшие слоты именно выбрасываются, а не помечаются недоступными
//
// Сравнение времени лексикографическое по зануленным строкам HH:MM[:SS] -
// "08:30:00" против текущего "08:30" не считается прошедшим
func filterSlots(slots []*domain.SlotAvailability, requestDate, now time.Time) []*domain.SlotAvailability {
	if isDateInPast(requestDate, now) {
		return []*domain.SlotAvailability{}
	}

	if !isSameDay(requestDate, now) {
		return slots
	}

	currentTime := types.NewTimeString(now)

	filtered := make([]*domain.SlotAvailability, 0, len(slots))
	for _, slot := range slots {
		if !slot.SlotTime.IsBefore(currentTime) {
			filtered = append(filtered, slot)
		}
	}

	return filtered
}

// toSlotViews конвертирует строки доступности в представления для чекаута
func toSlotViews(slots []*domain.SlotAvailability) []SlotView {
	views := make([]SlotView, len(slots))
	for i, slot := range slots {
		views[i] = SlotView{
			ID:          slot.ID,
			SlotTime:    slot.SlotTime,
			MaxOrders:   slot.MaxOrders,
			BookedCount: slot.BookedCount,
			IsBlocked:   slot.IsBlocked,
			IsFull:      slot.IsFull(),
		}
	}
	return views
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
// Сравниваются только даты по серверным часам; сервис предполагает одну
// таймзону для всех кафе - это известное ограничение
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
