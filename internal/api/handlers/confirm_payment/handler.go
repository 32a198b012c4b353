package confirm_payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tapcafe/TapCafe-SlotService/internal/api/handlers"
	"github.com/tapcafe/TapCafe-SlotService/internal/api/middleware"
	ordersService "github.com/tapcafe/TapCafe-SlotService/internal/service/orders"
)

const (
	msgInvalidOrderID   = "некорректный идентификатор заказа"
	msgOrderNotFound    = "заказ не найден"
	msgAccessDenied     = "нет доступа к этому заказу"
	msgAlreadyProcessed = "оплата по этому заказу уже обработана"
	msgUnauthorized     = "требуется аутентификация"
)

type Handler struct {
	service OrdersService
	logger  Logger
}

func NewHandler(service OrdersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/orders/{orderId}/payment/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	orderID, err := strconv.ParseInt(mux.Vars(r)["orderId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	staff := middleware.IsStaffFromContext(r.Context())

	if err := h.service.ConfirmPayment(r.Context(), orderID, userID, staff); err != nil {
		switch {
		case errors.Is(err, ordersService.ErrOrderNotFound):
			h.logger.Warn("POST /orders/payment/confirm - Order not found: order_id=%d", orderID)
			handlers.RespondNotFound(w, msgOrderNotFound)
		case errors.Is(err, ordersService.ErrAccessDenied):
			h.logger.Warn("POST /orders/payment/confirm - Access denied: order_id=%d, user_id=%d", orderID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, ordersService.ErrPaymentAlreadyProcessed):
			h.logger.Warn("POST /orders/payment/confirm - Already processed: order_id=%d", orderID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyProcessed)
		default:
			h.logger.Error("POST /orders/payment/confirm - Failed: order_id=%d, error=%v", orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /orders/payment/confirm - Payment confirmed: order_id=%d, user_id=%d", orderID, userID)
	w.WriteHeader(http.StatusNoContent)
}
