package get_user_orders

import (
	"time"

	"github.com/tapcafe/TapCafe-SlotService/internal/domain"
	"github.com/tapcafe/TapCafe-SlotService/internal/service/orders/models"
)

// OrderView заказ в списке истории (без позиций)
type OrderView struct {
	ID            int64   `json:"id"`
	Reference     string  `json:"reference"`
	CafeID        int64   `json:"cafeId"`
	SlotID        int64   `json:"slotId"`
	SlotDate      string  `json:"slotDate"`
	SlotTime      string  `json:"slotTime"`
	Status        string  `json:"status"`
	TotalAmount   float64 `json:"totalAmount"`
	PaymentStatus string  `json:"paymentStatus"`
	CreatedAt     string  `json:"createdAt"`
}

// UserOrdersResponse HTTP response model
type UserOrdersResponse struct {
	UserID int64       `json:"userId"`
	Orders []OrderView `json:"orders"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(userID int64, resp *models.OrderListResponse) *UserOrdersResponse {
	orders := make([]OrderView, len(resp.Orders))
	for i, o := range resp.Orders {
		orders[i] = OrderView{
			ID:            o.ID,
			Reference:     o.Reference,
			CafeID:        o.CafeID,
			SlotID:        o.SlotID,
			SlotDate:      o.SlotDate.Format(domain.DateFormat),
			SlotTime:      o.SlotTime.String(),
			Status:        o.Status,
			TotalAmount:   o.TotalAmount,
			PaymentStatus: o.PaymentStatus,
			CreatedAt:     o.CreatedAt.Format(time.RFC3339),
		}
	}

	return &UserOrdersResponse{
		UserID: userID,
		Orders: orders,
	}
}
