package domain

import (
	"time"

	"github.com/tapcafe/TapCafe-SlotService/pkg/types"
)

// OrderStatus represents the status of a pickup order
type OrderStatus string

const (
	StatusPending          OrderStatus = "pending"
	StatusConfirmed        OrderStatus = "confirmed"
	StatusPreparing        OrderStatus = "preparing"
	StatusReady            OrderStatus = "ready"
	StatusCompleted        OrderStatus = "completed"
	StatusCancelledByUser  OrderStatus = "cancelled_by_user"
	StatusCancelledByStaff OrderStatus = "cancelled_by_staff"
)

// PaymentStatus represents the payment state of an order
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// Order represents a customer pickup order bound to one availability slot.
// Slot date/time are denormalized so order history survives slot edits.
type Order struct {
	ID        int64
	Reference string // публичный UUID заказа, используется как receipt в платежном шлюзе
	UserID    int64
	CafeID    int64
	SlotID    int64
	SlotDate  time.Time
	SlotTime  types.TimeString
	Status    OrderStatus

	Subtotal       float64
	DiscountAmount float64
	CouponCode     *string
	TaxAmount      float64
	TotalAmount    float64

	PaymentStatus      PaymentStatus
	GatewayOrderID     *string
	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time

	Items []OrderItem

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderItem represents one line of an order with denormalized menu data
type OrderItem struct {
	ID         int64
	OrderID    int64
	MenuItemID *int64
	ItemName   string
	UnitPrice  float64
	Quantity   int
	TotalPrice float64
}

// IsActive returns true if the order still occupies its slot
func (o *Order) IsActive() bool {
	return o.Status != StatusCancelledByUser && o.Status != StatusCancelledByStaff
}

// CanBeCancelled returns true if the order can still be cancelled
func (o *Order) CanBeCancelled() bool {
	for _, s := range CancellableOrderStatuses {
		if o.Status == s {
			return true
		}
	}
	return false
}

// IsCancelled returns true if the order has been cancelled
func (o *Order) IsCancelled() bool {
	return o.Status == StatusCancelledByUser || o.Status == StatusCancelledByStaff
}
