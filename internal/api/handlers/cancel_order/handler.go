package cancel_order

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tapcafe/TapCafe-SlotService/internal/api/handlers"
	"github.com/tapcafe/TapCafe-SlotService/internal/api/middleware"
	ordersService "github.com/tapcafe/TapCafe-SlotService/internal/service/orders"
	"github.com/tapcafe/TapCafe-SlotService/internal/service/orders/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidOrderID     = "некорректный идентификатор заказа"
	msgOrderNotFound      = "заказ не найден"
	msgAccessDenied       = "нет доступа к этому заказу"
	msgCannotCancel       = "заказ не может быть отменен"
	msgUnauthorized       = "требуется аутентификация"
)

// CancelOrderRequest HTTP request model
type CancelOrderRequest struct {
	CancellationReason string `json:"cancellationReason,omitempty"`
}

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

// Handle PATCH /api/v1/orders/{orderId}/cancel
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

	// Тело опционально: отмена без причины допустима
	var req CancelOrderRequest
	if r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("PATCH /orders/cancel - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	serviceReq := &models.CancelOrderRequest{
		UserID:             userID,
		StaffOverride:      middleware.IsStaffFromContext(r.Context()),
		CancellationReason: req.CancellationReason,
	}

	if err := h.service.Cancel(r.Context(), orderID, serviceReq); err != nil {
		switch {
		case errors.Is(err, ordersService.ErrOrderNotFound):
			h.logger.Warn("PATCH /orders/cancel - Order not found: order_id=%d", orderID)
			handlers.RespondNotFound(w, msgOrderNotFound)
		case errors.Is(err, ordersService.ErrAccessDenied):
			h.logger.Warn("PATCH /orders/cancel - Access denied: order_id=%d, user_id=%d", orderID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, ordersService.ErrCannotCancel):
			h.logger.Warn("PATCH /orders/cancel - Cannot cancel: order_id=%d", orderID)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)
		default:
			h.logger.Error("PATCH /orders/cancel - Failed: order_id=%d, error=%v", orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /orders/cancel - Order cancelled: order_id=%d, user_id=%d", orderID, userID)
	w.WriteHeader(http.StatusNoContent)
}
