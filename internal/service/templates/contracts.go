package templates

import (
	"context"

	"github.com/tapcafe/TapCafe-SlotService/internal/domain"
	templateRepo "github.com/tapcafe/TapCafe-SlotService/internal/infra/storage/template"
)

// TemplateRepository интерфейс репозитория шаблонов слотов
type TemplateRepository interface {
	Create(ctx context.Context, tmpl *domain.SlotTemplate) (*domain.SlotTemplate, error)
	GetByID(ctx context.Context, id int64) (*domain.SlotTemplate, error)
	ListByCafe(ctx context.Context, cafeID int64, onlyActive bool) ([]*domain.SlotTemplate, error)
	CountByCafe(ctx context.Context, cafeID int64) (int, error)
	Update(ctx context.Context, id int64, params templateRepo.UpdateParams) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
