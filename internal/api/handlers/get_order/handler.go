package get_order

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
	msgInvalidOrderID = "некорректный идентификатор заказа"
	msgOrderNotFound  = "заказ не найден"
	msgAccessDenied   = "нет доступа к этому заказу"
	msgUnauthorized   = "требуется аутентификация"
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

// Handle GET /api/v1/orders/{orderId}
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

	result, err := h.service.GetByID(r.Context(), orderID, userID, staff)
	if err != nil {
		switch {
		case errors.Is(err, ordersService.ErrOrderNotFound):
			h.logger.Warn("GET /orders - Order not found: order_id=%d", orderID)
			handlers.RespondNotFound(w, msgOrderNotFound)
		case errors.Is(err, ordersService.ErrAccessDenied):
			h.logger.Warn("GET /orders - Access denied: order_id=%d, user_id=%d", orderID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("GET /orders - Failed: order_id=%d, error=%v", orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
