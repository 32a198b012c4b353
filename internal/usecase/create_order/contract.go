package create_order

import (
	"context"

	"github.com/tapcafe/TapCafe-SlotService/internal/domain"
	"github.com/tapcafe/TapCafe-SlotService/internal/integrations/payments"
)

// BookingCoordinator интерфейс координатора бронирования
// Book вызывается до записи заказа; Release - компенсация при любом
// последующем отказе в этом же потоке
type BookingCoordinator interface {
	Book(ctx context.Context, slotID int64) error
	Release(ctx context.Context, slotID int64) error
}

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
}

// PaymentsClient интерфейс клиента платежного шлюза
type PaymentsClient interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*payments.GatewayOrder, error)
}

// TransactionManager интерфейс для управления транзакциями
// Заказ и его позиции записываются в одной транзакции
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
