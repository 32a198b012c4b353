package availability

import "errors"

var (
	// ErrSlotNotFound возвращается, когда строка доступности не найдена
	ErrSlotNotFound = errors.New("availability.repository: slot not found")

	// ErrSlotFull возвращается, когда у слота не осталось свободных мест
	ErrSlotFull = errors.New("availability.repository: slot is full")

	// ErrSlotBlocked возвращается, когда слот заблокирован администратором
	ErrSlotBlocked = errors.New("availability.repository: slot is blocked")

	// ErrDuplicateSlot возвращается при нарушении уникальности (cafe_id, slot_date, slot_time)
	// Это ожидаемый сигнал гонки материализации: вызывающий код перечитывает строки
	ErrDuplicateSlot = errors.New("availability.repository: slot row already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")
)
