package booking

import "context"

// AvailabilityRepository интерфейс репозитория журнала доступности
// Book и Release - единственные операции, изменяющие booked_count
type AvailabilityRepository interface {
	Book(ctx context.Context, id int64) error
	Release(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
