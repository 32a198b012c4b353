package get_order

import (
	"time"

	"github.com/tapcafe/TapCafe-SlotService/internal/domain"
	"github.com/tapcafe/TapCafe-SlotService/internal/service/orders/models"
)

// OrderItemView позиция заказа в ответе
type OrderItemView struct {
	ID         int64   `json:"id"`
	MenuItemID *int64  `json:"menuItemId"`
	ItemName   string  `json:"itemName"`
	UnitPrice  float64 `json:"unitPrice"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"totalPrice"`
}

// OrderResponse HTTP response model
type OrderResponse struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`
	UserID    int64  `json:"userId"`
	CafeID    int64  `json:"cafeId"`
	SlotID    int64  `json:"slotId"`
	SlotDate  string `json:"slotDate"`
	SlotTime  string `json:"slotTime"`
	Status    string `json:"status"`

	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discountAmount"`
	CouponCode     *string `json:"couponCode"`
	TaxAmount      float64 `json:"taxAmount"`
	TotalAmount    float64 `json:"totalAmount"`

	PaymentStatus  string  `json:"paymentStatus"`
	GatewayOrderID *string `json:"gatewayOrderId"`
	Notes          *string `json:"notes"`

	CancellationReason *string `json:"cancellationReason"`
	CancelledAt        *string `json:"cancelledAt"`

	Items []OrderItemView `json:"items"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.OrderResponse) *OrderResponse {
	items := make([]OrderItemView, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = OrderItemView{
			ID:         item.ID,
			MenuItemID: item.MenuItemID,
			ItemName:   item.ItemName,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
			TotalPrice: item.TotalPrice,
		}
	}

	var cancelledAt *string
	if resp.CancelledAt != nil {
		formatted := resp.CancelledAt.Format(time.RFC3339)
		cancelledAt = &formatted
	}

	return &OrderResponse{
		ID:                 resp.ID,
		Reference:          resp.Reference,
		UserID:             resp.UserID,
		CafeID:             resp.CafeID,
		SlotID:             resp.SlotID,
		SlotDate:           resp.SlotDate.Format(domain.DateFormat),
		SlotTime:           resp.SlotTime.String(),
		Status:             resp.Status,
		Subtotal:           resp.Subtotal,
		DiscountAmount:     resp.DiscountAmount,
		CouponCode:         resp.CouponCode,
		TaxAmount:          resp.TaxAmount,
		TotalAmount:        resp.TotalAmount,
		PaymentStatus:      resp.PaymentStatus,
		GatewayOrderID:     resp.GatewayOrderID,
		Notes:              resp.Notes,
		CancellationReason: resp.CancellationReason,
		CancelledAt:        cancelledAt,
		Items:              items,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          resp.UpdatedAt.Format(time.RFC3339),
	}
}
