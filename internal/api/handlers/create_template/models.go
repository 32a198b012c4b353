package create_template

import (
	"time"

	"github.com/tapcafe/TapCafe-SlotService/internal/service/templates/models"
	"github.com/tapcafe/TapCafe-SlotService/pkg/types"
)

// CreateTemplateRequest HTTP request model
type CreateTemplateRequest struct {
	SlotTime  string `json:"slotTime"` // "10:00"
	MaxOrders int    `json:"maxOrders"`
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

// ToServiceRequest конвертирует HTTP запрос в модель сервиса (с парсингом времени)
func (r *CreateTemplateRequest) ToServiceRequest(cafeID int64) (*models.CreateTemplateRequest, error) {
	slotTime, err := types.NewTimeStringFromString(r.SlotTime)
	if err != nil {
		return nil, err
	}

	return &models.CreateTemplateRequest{
		CafeID:    cafeID,
		SlotTime:  slotTime,
		MaxOrders: r.MaxOrders,
	}, nil
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
