package orders

import (
	"context"

	"github.com/tapcafe/TapCafe-SlotService/internal/domain"
)

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	GetByUserID(ctx context.Context, userID int64) ([]*domain.Order, error)
	Cancel(ctx context.Context, id int64, status domain.OrderStatus, reason string) error
	ConfirmPayment(ctx context.Context, id int64) error
}

// BookingCoordinator интерфейс координатора бронирования
// Отмена заказа освобождает место в слоте компенсирующим Release
type BookingCoordinator interface {
	Release(ctx context.Context, slotID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
