package get_order

import (
	"context"

	"github.com/tapcafe/TapCafe-SlotService/internal/service/orders/models"
)

type OrdersService interface {
	GetByID(ctx context.Context, id, userID int64, staff bool) (*models.OrderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
