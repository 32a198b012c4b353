package slots

import (
	"context"
	"time"

	"github.com/tapcafe/TapCafe-SlotService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория журнала доступности
type AvailabilityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.SlotAvailability, error)
	GetByCafeAndDate(ctx context.Context, cafeID int64, date time.Time) ([]*domain.SlotAvailability, error)
	BatchInsert(ctx context.Context, slots []*domain.SlotAvailability) error
	SetBlocked(ctx context.Context, id int64, blocked bool) error
}

// TemplateRepository интерфейс репозитория шаблонов слотов
type TemplateRepository interface {
	ListByCafe(ctx context.Context, cafeID int64, onlyActive bool) ([]*domain.SlotTemplate, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
