package orders

import "errors"

var (
	// ErrOrderNotFound возвращается, когда заказ не найден
	ErrOrderNotFound = errors.New("orders.service: order not found")

	// ErrAccessDenied возвращается при попытке доступа к чужому заказу
	ErrAccessDenied = errors.New("orders.service: access denied")

	// ErrCannotCancel возвращается, когда заказ не может быть отменен
	ErrCannotCancel = errors.New("orders.service: order cannot be cancelled")

	// ErrPaymentAlreadyProcessed возвращается при повторном подтверждении оплаты
	// или подтверждении заказа, который уже не ждет оплаты
	ErrPaymentAlreadyProcessed = errors.New("orders.service: payment already processed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("orders.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("orders.service: internal error")
)
