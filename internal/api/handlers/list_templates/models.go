package list_templates

import (
	"time"

	"github.com/tapcafe/TapCafe-SlotService/internal/service/templates/models"
)

// TemplateView шаблон слота в ответе
type TemplateView struct {
	ID        int64  `json:"id"`
	CafeID    int64  `json:"cafeId"`
	SlotTime  string `json:"slotTime"`
	MaxOrders int    `json:"maxOrders"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ListTemplatesResponse HTTP response model
type ListTemplatesResponse struct {
	Templates []TemplateView `json:"templates"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.TemplateListResponse) *ListTemplatesResponse {
	templates := make([]TemplateView, len(resp.Templates))
	for i, tmpl := range resp.Templates {
		templates[i] = TemplateView{
			ID:        tmpl.ID,
			CafeID:    tmpl.CafeID,
			SlotTime:  tmpl.SlotTime.String(),
			MaxOrders: tmpl.MaxOrders,
			IsActive:  tmpl.IsActive,
			CreatedAt: tmpl.CreatedAt.Format(time.RFC3339),
			UpdatedAt: tmpl.UpdatedAt.Format(time.RFC3339),
		}
	}
	return &ListTemplatesResponse{Templates: templates}
}
