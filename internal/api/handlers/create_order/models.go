package create_order

import (
	"time"

	"github.com/tapcafe/TapCafe-SlotService/internal/domain"
	createOrder "github.com/tapcafe/TapCafe-SlotService/internal/usecase/create_order"
	"github.com/tapcafe/TapCafe-SlotService/pkg/types"
)

// ItemRequest позиция заказа в HTTP запросе
type ItemRequest struct {
	MenuItemID *int64  `json:"menuItemId,omitempty"`
	ItemName   string  `json:"itemName"`
	UnitPrice  float64 `json:"unitPrice"`
	Quantity   int     `json:"quantity"`
}

// CreateOrderRequest HTTP request model
type CreateOrderRequest struct {
	CafeID   int64  `json:"cafeId"`
	SlotID   int64  `json:"slotId"`
	SlotDate string `json:"slotDate"` // "2025-06-01"
	SlotTime string `json:"slotTime"` // "10:00"

	Items []ItemRequest `json:"items"`

	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discountAmount"`
	CouponCode     *string `json:"couponCode,omitempty"`
	TaxAmount      float64 `json:"taxAmount"`
	TotalAmount    float64 `json:"totalAmount"`

	Notes *string `json:"notes,omitempty"`
}

// CreateOrderResponse HTTP response model
type CreateOrderResponse struct {
	ID             int64   `json:"id"`
	Reference      string  `json:"reference"`
	CafeID         int64   `json:"cafeId"`
	SlotID         int64   `json:"slotId"`
	SlotDate       string  `json:"slotDate"`
	SlotTime       string  `json:"slotTime"`
	Status         string  `json:"status"`
	TotalAmount    float64 `json:"totalAmount"`
	PaymentStatus  string  `json:"paymentStatus"`
	GatewayOrderID string  `json:"gatewayOrderId"`
	CreatedAt      string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// (с парсингом даты и времени слота)
func (r *CreateOrderRequest) ToUseCaseRequest(userID int64) (*createOrder.Request, error) {
	slotDate, err := time.Parse(domain.DateFormat, r.SlotDate)
	if err != nil {
		return nil, err
	}

	slotTime, err := types.NewTimeStringFromString(r.SlotTime)
	if err != nil {
		return nil, err
	}

	items := make([]createOrder.ItemRequest, len(r.Items))
	for i, item := range r.Items {
		items[i] = createOrder.ItemRequest{
			MenuItemID: item.MenuItemID,
			ItemName:   item.ItemName,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
		}
	}

	return &createOrder.Request{
		UserID:         userID,
		CafeID:         r.CafeID,
		SlotID:         r.SlotID,
		SlotDate:       slotDate,
		SlotTime:       slotTime,
		Items:          items,
		Subtotal:       r.Subtotal,
		DiscountAmount: r.DiscountAmount,
		CouponCode:     r.CouponCode,
		TaxAmount:      r.TaxAmount,
		TotalAmount:    r.TotalAmount,
		Notes:          r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createOrder.Response) *CreateOrderResponse {
	return &CreateOrderResponse{
		ID:             resp.ID,
		Reference:      resp.Reference,
		CafeID:         resp.CafeID,
		SlotID:         resp.SlotID,
		SlotDate:       resp.SlotDate.Format(domain.DateFormat),
		SlotTime:       resp.SlotTime.String(),
		Status:         resp.Status,
		TotalAmount:    resp.TotalAmount,
		PaymentStatus:  resp.PaymentStatus,
		GatewayOrderID: resp.GatewayOrderID,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}
