package booking

import (
	"context"
	"errors"
	"fmt"

	availabilityRepo "github.com/tapcafe/TapCafe-SlotService/internal/infra/storage/availability"
)

// Service координатор бронирования мест в слотах
// Тонкая обертка над атомарными операциями журнала: вся конкурентная
// корректность обеспечивается условным UPDATE'ом в хранилище, здесь только
// маппинг ошибок и логирование. Никакой внутренней очереди и повторов нет:
// отказ терминален для запроса, решение о компенсации принимает вызывающий поток
type Service struct {
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewService создает новый экземпляр координатора бронирования
func NewService(availabilityRepo AvailabilityRepository, logger Logger) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// Book занимает одно место в слоте
// При N конкурентных вызовах на один слот успевает ровно столько,
// сколько осталось мест - остальные получают ErrSlotFull
func (s *Service) Book(ctx context.Context, slotID int64) error {
	err := s.availabilityRepo.Book(ctx, slotID)
	switch {
	case err == nil:
		s.logger.Info("Book: slot=%d booked", slotID)
		return nil
	case errors.Is(err, availabilityRepo.ErrSlotNotFound):
		s.logger.Warn("Book: slot=%d not found", slotID)
		return ErrSlotNotFound
	case errors.Is(err, availabilityRepo.ErrSlotBlocked):
		// В логах блокировка и переполнение различаются, клиенту - нет
		s.logger.Warn("Book: slot=%d is blocked by admin", slotID)
		return ErrSlotBlocked
	case errors.Is(err, availabilityRepo.ErrSlotFull):
		s.logger.Warn("Book: slot=%d is full", slotID)
		return ErrSlotFull
	default:
		s.logger.Error("Book: repository error for slot=%d: %v", slotID, err)
		return fmt.Errorf("%w: Book - repository error: %v", ErrInternal, err)
	}
}

// Release освобождает одно место в слоте
// Пол на нуле обеспечивается хранилищем; вызов на пустом слоте не ошибка.
// Идемпотентность НЕ гарантируется - вызывающий поток обязан звать Release
// не более одного раза на успешный Book
func (s *Service) Release(ctx context.Context, slotID int64) error {
	err := s.availabilityRepo.Release(ctx, slotID)
	switch {
	case err == nil:
		s.logger.Info("Release: slot=%d released", slotID)
		return nil
	case errors.Is(err, availabilityRepo.ErrSlotNotFound):
		s.logger.Warn("Release: slot=%d not found", slotID)
		return ErrSlotNotFound
	default:
		s.logger.Error("Release: repository error for slot=%d: %v", slotID, err)
		return fmt.Errorf("%w: Release - repository error: %v", ErrInternal, err)
	}
}
