package order

import "errors"

var (
	// ErrOrderNotFound возвращается, когда заказ не найден
	ErrOrderNotFound = errors.New("order.repository: order not found")

	// ErrPaymentAlreadyProcessed возвращается, когда платеж заказа уже
	// подтвержден или заказ больше не в ожидании оплаты
	ErrPaymentAlreadyProcessed = errors.New("order.repository: payment already processed")

	// ErrOrderNotCancellable возвращается, когда заказ уже отменен или завершен
	ErrOrderNotCancellable = errors.New("order.repository: order cannot be cancelled")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("order.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("order.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("order.repository: failed to scan row")
)
