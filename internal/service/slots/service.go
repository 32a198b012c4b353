package slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tapcafe/TapCafe-SlotService/internal/domain"
	availabilityRepo "github.com/tapcafe/TapCafe-SlotService/internal/infra/storage/availability"
)

// Service материализация журнала доступности из шаблонов и административные
// операции над ним (просмотр дня, ручная блокировка)
type Service struct {
	availabilityRepo AvailabilityRepository
	templateRepo     TemplateRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(
	availabilityRepo AvailabilityRepository,
	templateRepo TemplateRepository,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		templateRepo:     templateRepo,
		logger:           logger,
	}
}

// EnsureAvailability гарантирует наличие строк доступности кафе на дату
// и возвращает их по возрастанию времени слота.
//
// Протокол ленивой материализации:
//  1. Если строки на дату уже есть - возвращаем их как есть.
//  2. Иначе строим кандидатов из активных шаблонов (capacity копируется,
//     booked_count=0, is_blocked=false) и вставляем батчем.
//  3. Конфликт уникальности означает, что конкурентный вызов успел раньше:
//     свою вставку отбрасываем и перечитываем строки из БД.
//
// Строка доступности создается ровно один раз и больше никогда не перерисовывается
// из шаблона: правки и удаление шаблона на неё не влияют.
func (s *Service) EnsureAvailability(ctx context.Context, cafeID int64, date time.Time) ([]*domain.SlotAvailability, error) {
	existing, err := s.availabilityRepo.GetByCafeAndDate(ctx, cafeID, date)
	if err != nil {
		s.logger.Error("EnsureAvailability: read error for cafe=%d date=%s: %v",
			cafeID, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: EnsureAvailability - read: %v", ErrInternal, err)
	}
	if len(existing) > 0 {
		return existing, nil
	}

	templates, err := s.templateRepo.ListByCafe(ctx, cafeID, true)
	if err != nil {
		s.logger.Error("EnsureAvailability: templates read error for cafe=%d: %v", cafeID, err)
		return nil, fmt.Errorf("%w: EnsureAvailability - read templates: %v", ErrInternal, err)
	}
	if len(templates) == 0 {
		return []*domain.SlotAvailability{}, nil
	}

	candidates := make([]*domain.SlotAvailability, len(templates))
	for i, tmpl := range templates {
		templateID := tmpl.ID
		candidates[i] = &domain.SlotAvailability{
			CafeID:      cafeID,
			TemplateID:  &templateID,
			SlotDate:    date,
			SlotTime:    tmpl.SlotTime,
			MaxOrders:   tmpl.MaxOrders,
			BookedCount: 0,
			IsBlocked:   false,
		}
	}

	if err := s.availabilityRepo.BatchInsert(ctx, candidates); err != nil {
		if errors.Is(err, availabilityRepo.ErrDuplicateSlot) {
			// Гонка материализации: конкурентный вызов уже вставил строки.
			// Отбрасываем свой результат и перечитываем - никакого смешанного
			// частичного ответа наружу не уходит
			s.logger.Info("EnsureAvailability: materialization race for cafe=%d date=%s, rereading",
				cafeID, date.Format(domain.DateFormat))
			return s.rereadAfterConflict(ctx, cafeID, date)
		}
		s.logger.Error("EnsureAvailability: insert error for cafe=%d date=%s: %v",
			cafeID, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: EnsureAvailability - insert: %v", ErrInternal, err)
	}

	s.logger.Info("EnsureAvailability: materialized %d slots for cafe=%d date=%s",
		len(candidates), cafeID, date.Format(domain.DateFormat))

	return s.availabilityRepo.GetByCafeAndDate(ctx, cafeID, date)
}

func (s *Service) rereadAfterConflict(ctx context.Context, cafeID int64, date time.Time) ([]*domain.SlotAvailability, error) {
	rows, err := s.availabilityRepo.GetByCafeAndDate(ctx, cafeID, date)
	if err != nil {
		return nil, fmt.Errorf("%w: EnsureAvailability - reread after conflict: %v", ErrInternal, err)
	}
	return rows, nil
}

// DayAvailability возвращает все строки доступности кафе на дату для админки
// Прошедшие слоты не отфильтровываются - администратор видит весь день
func (s *Service) DayAvailability(ctx context.Context, cafeID int64, date time.Time) ([]*domain.SlotAvailability, error) {
	return s.EnsureAvailability(ctx, cafeID, date)
}

// SetBlocked выставляет ручную блокировку слота
// Привилегированная операция админки, не связанная с путем бронирования;
// booked_count не сбрасывается ни при блокировке, ни при разблокировке
func (s *Service) SetBlocked(ctx context.Context, slotID int64, blocked bool) error {
	if err := s.availabilityRepo.SetBlocked(ctx, slotID, blocked); err != nil {
		if errors.Is(err, availabilityRepo.ErrSlotNotFound) {
			s.logger.Warn("SetBlocked: slot=%d not found", slotID)
			return ErrSlotNotFound
		}
		s.logger.Error("SetBlocked: repository error for slot=%d: %v", slotID, err)
		return fmt.Errorf("%w: SetBlocked - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetBlocked: slot=%d blocked=%t", slotID, blocked)
	return nil
}
