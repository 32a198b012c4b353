package create_template

import (
	"context"

	"github.com/tapcafe/TapCafe-SlotService/internal/service/templates/models"
)

type TemplatesService interface {
	Create(ctx context.Context, req *models.CreateTemplateRequest) (*models.TemplateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
