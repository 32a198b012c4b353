package models

import (
	"time"

	"github.com/tapcafe/TapCafe-SlotService/internal/domain"
	"github.com/tapcafe/TapCafe-SlotService/pkg/types"
)

// CreateTemplateRequest запрос на создание шаблона слота
type CreateTemplateRequest struct {
	CafeID    int64
	SlotTime  types.TimeString
	MaxOrders int
}

// UpdateTemplateRequest запрос на частичное обновление шаблона
// nil-поля не изменяются
type UpdateTemplateRequest struct {
	MaxOrders *int
	IsActive  *bool
}

// TemplateResponse шаблон слота в ответе сервиса
type TemplateResponse struct {
	ID        int64
	CafeID    int64
	SlotTime  types.TimeString
	MaxOrders int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TemplateListResponse список шаблонов
type TemplateListResponse struct {
	Templates []TemplateResponse
}

// InitializeResponse результат bulk-инициализации сетки шаблонов
type InitializeResponse struct {
	Created       int
	AlreadyExists bool
}

// FromDomainTemplate конвертирует доменный шаблон в модель ответа
func FromDomainTemplate(tmpl *domain.SlotTemplate) *TemplateResponse {
	return &TemplateResponse{
		ID:        tmpl.ID,
		CafeID:    tmpl.CafeID,
		SlotTime:  tmpl.SlotTime,
		MaxOrders: tmpl.MaxOrders,
		IsActive:  tmpl.IsActive,
		CreatedAt: tmpl.CreatedAt,
		UpdatedAt: tmpl.UpdatedAt,
	}
}

// FromDomainTemplateList конвертирует список доменных шаблонов
func FromDomainTemplateList(templates []*domain.SlotTemplate) *TemplateListResponse {
	result := make([]TemplateResponse, len(templates))
	for i, tmpl := range templates {
		result[i] = *FromDomainTemplate(tmpl)
	}
	return &TemplateListResponse{Templates: result}
}
