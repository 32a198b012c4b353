package block_slot

import "context"

type SlotsService interface {
	SetBlocked(ctx context.Context, slotID int64, blocked bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
