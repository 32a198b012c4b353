package booking

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("booking.service: slot not found")

	// ErrSlotFull возвращается, когда у слота исчерпана вместимость
	ErrSlotFull = errors.New("booking.service: slot is full")

	// ErrSlotBlocked возвращается, когда слот заблокирован администратором
	// Для клиента неотличим от ErrSlotFull, но различается в логах
	ErrSlotBlocked = errors.New("booking.service: slot is blocked")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("booking.service: internal error")
)
