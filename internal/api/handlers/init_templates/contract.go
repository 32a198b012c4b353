package init_templates

import (
	"context"

	"github.com/tapcafe/TapCafe-SlotService/internal/service/templates/models"
)

type TemplatesService interface {
	Initialize(ctx context.Context, cafeID int64) (*models.InitializeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
