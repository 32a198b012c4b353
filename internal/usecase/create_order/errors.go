package create_order

import "errors"

var (
	// ErrSlotNotFound возвращается, когда выбранный слот не существует
	ErrSlotNotFound = errors.New("create_order: slot not found")

	// ErrSlotNotAvailable возвращается, когда слот заполнен или заблокирован
	// Клиенту причины не различаются - "выберите другой слот"
	ErrSlotNotAvailable = errors.New("create_order: slot is not available")

	// ErrPaymentGateway возвращается при отказе платежного шлюза
	ErrPaymentGateway = errors.New("create_order: payment gateway error")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_order: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_order: internal error")
)
