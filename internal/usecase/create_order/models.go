package create_order

import (
	"time"

	"github.com/tapcafe/TapCafe-SlotService/pkg/types"
)

// ItemRequest позиция заказа в запросе
type ItemRequest struct {
	MenuItemID *int64
	ItemName   string
	UnitPrice  float64
	Quantity   int
}

// Request модель запроса на создание заказа
type Request struct {
	UserID   int64
	CafeID   int64
	SlotID   int64            // ID строки доступности, выбранной на чекауте
	SlotDate time.Time        // Дата выдачи (денормализуется в заказ)
	SlotTime types.TimeString // Время выдачи (денормализуется в заказ)

	Items []ItemRequest

	Subtotal       float64
	DiscountAmount float64
	CouponCode     *string
	TaxAmount      float64
	TotalAmount    float64

	Notes *string
}

// Response модель ответа с созданным заказом
type Response struct {
	ID             int64
	Reference      string
	UserID         int64
	CafeID         int64
	SlotID         int64
	SlotDate       time.Time
	SlotTime       types.TimeString
	Status         string
	TotalAmount    float64
	PaymentStatus  string
	GatewayOrderID string
	CreatedAt      time.Time
}
