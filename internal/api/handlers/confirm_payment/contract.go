package confirm_payment

import "context"

type OrdersService interface {
	ConfirmPayment(ctx context.Context, orderID, userID int64, staff bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
