package domain

// Default template generation values (bulk initialize)
const (
	DefaultTemplateOpenTime    = "08:00"
	DefaultTemplateCloseTime   = "22:00"
	DefaultTemplateStepMinutes = 15
	DefaultTemplateMaxOrders   = 10
)

// Business validation constants
const (
	MinSlotMaxOrders = 1
	MaxSlotMaxOrders = 100

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// CancellableOrderStatuses список статусов, из которых заказ можно отменить
var CancellableOrderStatuses = []OrderStatus{
	StatusPending,
	StatusConfirmed,
}
