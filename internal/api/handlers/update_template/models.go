package update_template

import (
	"time"

	"github.com/tapcafe/TapCafe-SlotService/internal/service/templates/models"
)

// UpdateTemplateRequest HTTP request model
// nil-поля не изменяются
type UpdateTemplateRequest struct {
	MaxOrders *int  `json:"maxOrders,omitempty"`
	IsActive  *bool `json:"isActive,omitempty"`
}

// TemplateResponse HTTP response model
type TemplateResponse struct {
	ID        int64  `json:"id"`
	CafeID    int64  `json:"cafeId"`
	SlotTime  string `json:"slotTime"`
	MaxOrders int    `json:"maxOrders"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateTemplateRequest) ToServiceRequest() *models.UpdateTemplateRequest {
	return &models.UpdateTemplateRequest{
		MaxOrders: r.MaxOrders,
		IsActive:  r.IsActive,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.TemplateResponse) *TemplateResponse {
	return &TemplateResponse{
		ID:        resp.ID,
		CafeID:    resp.CafeID,
		SlotTime:  resp.SlotTime.String(),
		MaxOrders: resp.MaxOrders,
		IsActive:  resp.IsActive,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
