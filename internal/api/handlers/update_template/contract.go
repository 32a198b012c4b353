package update_template

import (
	"context"

	"github.com/tapcafe/TapCafe-SlotService/internal/service/templates/models"
)

type TemplatesService interface {
	Update(ctx context.Context, cafeID, templateID int64, req *models.UpdateTemplateRequest) (*models.TemplateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
