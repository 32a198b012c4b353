package models

import (
	"time"

	"github.com/tapcafe/TapCafe-SlotService/internal/domain"
	"github.com/tapcafe/TapCafe-SlotService/pkg/types"
)

// CancelOrderRequest запрос на отмену заказа
type CancelOrderRequest struct {
	UserID             int64
	StaffOverride      bool // true, если отмену выполняет персонал кафе
	CancellationReason string
}

// OrderItemResponse позиция заказа в ответе сервиса
type OrderItemResponse struct {
	ID         int64
	MenuItemID *int64
	ItemName   string
	UnitPrice  float64
	Quantity   int
	TotalPrice float64
}

// OrderResponse заказ в ответе сервиса
type OrderResponse struct {
	ID        int64
	Reference string
	UserID    int64
	CafeID    int64
	SlotID    int64
	SlotDate  time.Time
	SlotTime  types.TimeString
	Status    string

	Subtotal       float64
	DiscountAmount float64
	CouponCode     *string
	TaxAmount      float64
	TotalAmount    float64

	PaymentStatus  string
	GatewayOrderID *string
	Notes          *string

	CancellationReason *string
	CancelledAt        *time.Time

	Items []OrderItemResponse

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderListResponse список заказов
type OrderListResponse struct {
	Orders []OrderResponse
}

// FromDomainOrder конвертирует доменный заказ в модель ответа
func FromDomainOrder(o *domain.Order) *OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			ID:         item.ID,
			MenuItemID: item.MenuItemID,
			ItemName:   item.ItemName,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
			TotalPrice: item.TotalPrice,
		}
	}

	return &OrderResponse{
		ID:                 o.ID,
		Reference:          o.Reference,
		UserID:             o.UserID,
		CafeID:             o.CafeID,
		SlotID:             o.SlotID,
		SlotDate:           o.SlotDate,
		SlotTime:           o.SlotTime,
		Status:             string(o.Status),
		Subtotal:           o.Subtotal,
		DiscountAmount:     o.DiscountAmount,
		CouponCode:         o.CouponCode,
		TaxAmount:          o.TaxAmount,
		TotalAmount:        o.TotalAmount,
		PaymentStatus:      string(o.PaymentStatus),
		GatewayOrderID:     o.GatewayOrderID,
		Notes:              o.Notes,
		CancellationReason: o.CancellationReason,
		CancelledAt:        o.CancelledAt,
		Items:              items,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

// FromDomainOrderList конвертирует список доменных заказов
func FromDomainOrderList(list []*domain.Order) *OrderListResponse {
	result := make([]OrderResponse, len(list))
	for i, o := range list {
		result[i] = *FromDomainOrder(o)
	}
	return &OrderListResponse{Orders: result}
}
