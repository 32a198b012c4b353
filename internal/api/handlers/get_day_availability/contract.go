package get_day_availability

import (
	"context"
	"time"

	"github.com/tapcafe/TapCafe-SlotService/internal/domain"
)

type SlotsService interface {
	DayAvailability(ctx context.Context, cafeID int64, date time.Time) ([]*domain.SlotAvailability, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
