package templates

import (
	"context"
	"errors"
	"fmt"

	"github.com/tapcafe/TapCafe-SlotService/internal/domain"
	templateRepo "github.com/tapcafe/TapCafe-SlotService/internal/infra/storage/template"
	"github.com/tapcafe/TapCafe-SlotService/internal/service/templates/models"
	"github.com/tapcafe/TapCafe-SlotService/pkg/types"
)

// Service сервис для работы с шаблонами слотов
type Service struct {
	templateRepo TemplateRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса шаблонов
func NewService(templateRepo TemplateRepository, logger Logger) *Service {
	return &Service{
		templateRepo: templateRepo,
		logger:       logger,
	}
}

// Create создает шаблон слота
// Дубликат времени для того же кафе отклоняется (активность шаблона роли не играет)
func (s *Service) Create(ctx context.Context, req *models.CreateTemplateRequest) (*models.TemplateResponse, error) {
	s.logger.Info("CreateTemplate: cafe=%d, time=%s, maxOrders=%d", req.CafeID, req.SlotTime, req.MaxOrders)

	if err := validateMaxOrders(req.MaxOrders); err != nil {
		s.logger.Warn("CreateTemplate: validation failed for cafe=%d: %v", req.CafeID, err)
		return nil, err
	}

	tmpl := &domain.SlotTemplate{
		CafeID:    req.CafeID,
		SlotTime:  req.SlotTime,
		MaxOrders: req.MaxOrders,
		IsActive:  true,
	}

	created, err := s.templateRepo.Create(ctx, tmpl)
	if err != nil {
		if errors.Is(err, templateRepo.ErrDuplicateTemplate) {
			s.logger.Warn("CreateTemplate: duplicate time=%s for cafe=%d", req.SlotTime, req.CafeID)
			return nil, ErrDuplicateTemplate
		}
		s.logger.Error("CreateTemplate: repository error for cafe=%d: %v", req.CafeID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateTemplate: created template id=%d for cafe=%d", created.ID, req.CafeID)
	return models.FromDomainTemplate(created), nil
}

// List возвращает все шаблоны кафе (включая неактивные), по возрастанию времени
func (s *Service) List(ctx context.Context, cafeID int64) (*models.TemplateListResponse, error) {
	templates, err := s.templateRepo.ListByCafe(ctx, cafeID, false)
	if err != nil {
		s.logger.Error("ListTemplates: repository error for cafe=%d: %v", cafeID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListTemplates: fetched %d templates for cafe=%d", len(templates), cafeID)
	return models.FromDomainTemplateList(templates), nil
}

// Update частично обновляет шаблон (capacity и/или активность)
// Изменения не затрагивают уже материализованные строки доступности
func (s *Service) Update(ctx context.Context, cafeID, templateID int64, req *models.UpdateTemplateRequest) (*models.TemplateResponse, error) {
	s.logger.Info("UpdateTemplate: cafe=%d, template=%d", cafeID, templateID)

	if req.MaxOrders == nil && req.IsActive == nil {
		s.logger.Warn("UpdateTemplate: empty update for template=%d", templateID)
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if req.MaxOrders != nil {
		if err := validateMaxOrders(*req.MaxOrders); err != nil {
			s.logger.Warn("UpdateTemplate: validation failed for template=%d: %v", templateID, err)
			return nil, err
		}
	}

	if err := s.checkOwnership(ctx, cafeID, templateID); err != nil {
		return nil, err
	}

	err := s.templateRepo.Update(ctx, templateID, templateRepo.UpdateParams{
		MaxOrders: req.MaxOrders,
		IsActive:  req.IsActive,
	})
	if err != nil {
		if errors.Is(err, templateRepo.ErrTemplateNotFound) {
			return nil, ErrTemplateNotFound
		}
		s.logger.Error("UpdateTemplate: repository error for template=%d: %v", templateID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		s.logger.Error("UpdateTemplate: reread error for template=%d: %v", templateID, err)
		return nil, fmt.Errorf("%w: Update - reread error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateTemplate: updated template id=%d", templateID)
	return models.FromDomainTemplate(updated), nil
}

// Delete удаляет шаблон безусловно
// Уже материализованные строки доступности остаются без изменений -
// история и принятые заказы не затрагиваются
func (s *Service) Delete(ctx context.Context, cafeID, templateID int64) error {
	s.logger.Info("DeleteTemplate: cafe=%d, template=%d", cafeID, templateID)

	if err := s.checkOwnership(ctx, cafeID, templateID); err != nil {
		return err
	}

	if err := s.templateRepo.Delete(ctx, templateID); err != nil {
		if errors.Is(err, templateRepo.ErrTemplateNotFound) {
			return ErrTemplateNotFound
		}
		s.logger.Error("DeleteTemplate: repository error for template=%d: %v", templateID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteTemplate: deleted template id=%d", templateID)
	return nil
}

// Initialize создает сетку шаблонов 08:00-22:00 с шагом 15 минут
// Если у кафе уже есть шаблоны, повторная генерация не выполняется
func (s *Service) Initialize(ctx context.Context, cafeID int64) (*models.InitializeResponse, error) {
	s.logger.Info("InitializeTemplates: cafe=%d", cafeID)

	count, err := s.templateRepo.CountByCafe(ctx, cafeID)
	if err != nil {
		s.logger.Error("InitializeTemplates: count error for cafe=%d: %v", cafeID, err)
		return nil, fmt.Errorf("%w: Initialize - repository error: %v", ErrInternal, err)
	}
	if count > 0 {
		s.logger.Info("InitializeTemplates: cafe=%d already has %d templates", cafeID, count)
		return &models.InitializeResponse{AlreadyExists: true}, nil
	}

	times, err := defaultTemplateGrid()
	if err != nil {
		return nil, fmt.Errorf("%w: Initialize - build grid: %v", ErrInternal, err)
	}

	created := 0
	for _, slotTime := range times {
		tmpl := &domain.SlotTemplate{
			CafeID:    cafeID,
			SlotTime:  slotTime,
			MaxOrders: domain.DefaultTemplateMaxOrders,
			IsActive:  true,
		}
		if _, err := s.templateRepo.Create(ctx, tmpl); err != nil {
			// Конкурентная инициализация: кто-то успел создать этот слот раньше
			if errors.Is(err, templateRepo.ErrDuplicateTemplate) {
				continue
			}
			s.logger.Error("InitializeTemplates: create error for cafe=%d time=%s: %v", cafeID, slotTime, err)
			return nil, fmt.Errorf("%w: Initialize - repository error: %v", ErrInternal, err)
		}
		created++
	}

	s.logger.Info("InitializeTemplates: created %d templates for cafe=%d", created, cafeID)
	return &models.InitializeResponse{Created: created}, nil
}

// checkOwnership проверяет, что шаблон принадлежит указанному кафе
func (s *Service) checkOwnership(ctx context.Context, cafeID, templateID int64) error {
	tmpl, err := s.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, templateRepo.ErrTemplateNotFound) {
			s.logger.Warn("checkOwnership: template=%d not found", templateID)
			return ErrTemplateNotFound
		}
		s.logger.Error("checkOwnership: repository error for template=%d: %v", templateID, err)
		return fmt.Errorf("%w: checkOwnership - repository error: %v", ErrInternal, err)
	}

	if tmpl.CafeID != cafeID {
		s.logger.Warn("checkOwnership: template=%d belongs to cafe=%d, not cafe=%d", templateID, tmpl.CafeID, cafeID)
		return ErrTemplateNotFound
	}

	return nil
}

// defaultTemplateGrid строит сетку времен от открытия до закрытия с фиксированным шагом
func defaultTemplateGrid() ([]types.TimeString, error) {
	open, err := types.NewTimeStringFromString(domain.DefaultTemplateOpenTime)
	if err != nil {
		return nil, err
	}
	close, err := types.NewTimeStringFromString(domain.DefaultTemplateCloseTime)
	if err != nil {
		return nil, err
	}

	times := make([]types.TimeString, 0)
	current := open
	for !current.IsAfter(close) {
		times = append(times, current)
		next, err := current.AddMinutes(domain.DefaultTemplateStepMinutes)
		if err != nil {
			break
		}
		current = next
	}

	return times, nil
}

func validateMaxOrders(maxOrders int) error {
	if maxOrders < domain.MinSlotMaxOrders || maxOrders > domain.MaxSlotMaxOrders {
		return fmt.Errorf("%w: max_orders must be between %d and %d",
			ErrInvalidInput, domain.MinSlotMaxOrders, domain.MaxSlotMaxOrders)
	}
	return nil
}
