package slots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда строка доступности не найдена
	ErrSlotNotFound = errors.New("slots.service: slot not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("slots.service: internal error")
)
