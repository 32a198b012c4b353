package get_available_slots

import (
	"context"
	"time"

	"github.com/tapcafe/TapCafe-SlotService/internal/domain"
)

// SlotMaterializer интерфейс материализатора журнала доступности
type SlotMaterializer interface {
	EnsureAvailability(ctx context.Context, cafeID int64, date time.Time) ([]*domain.SlotAvailability, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
