package get_available_slots

import (
	"context"
	"fmt"

	"github.com/tapcafe/TapCafe-SlotService/internal/domain"
)

// UseCase use case получения доступных слотов выдачи на дату
// Read-side: сначала гарантирует материализацию строк на дату, затем
// фильтрует по времени. Сам booked_count и is_blocked никогда не изменяет
type UseCase struct {
	materializer SlotMaterializer
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(materializer SlotMaterializer, logger Logger) *UseCase {
	return &UseCase{
		materializer: materializer,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: cafe=%d, date=%s", req.CafeID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	slots, err := uc.materializer.EnsureAvailability(ctx, req.CafeID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: materialization failed for cafe=%d date=%s: %v",
			req.CafeID, req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to ensure availability: %v", ErrInternal, err)
	}

	visible := filterSlots(slots, req.Date, now)

	uc.logger.Info("GetAvailableSlots: returning %d of %d slots for cafe=%d date=%s",
		len(visible), len(slots), req.CafeID, req.Date.Format(domain.DateFormat))

	return &Response{
		CafeID: req.CafeID,
		Date:   req.Date,
		Slots:  toSlotViews(visible),
	}, nil
}
