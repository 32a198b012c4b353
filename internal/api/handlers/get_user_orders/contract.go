package get_user_orders

import (
	"context"

	"github.com/tapcafe/TapCafe-SlotService/internal/service/orders/models"
)

type OrdersService interface {
	GetUserOrders(ctx context.Context, userID int64) (*models.OrderListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
