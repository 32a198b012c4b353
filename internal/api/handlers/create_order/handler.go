package create_order

import (
	"errors"
	"net/http"

	"github.com/tapcafe/TapCafe-SlotService/internal/api/handlers"
	"github.com/tapcafe/TapCafe-SlotService/internal/api/middleware"
	createOrder "github.com/tapcafe/TapCafe-SlotService/internal/usecase/create_order"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlotFields  = "некорректные дата или время слота"
	msgInvalidInput       = "некорректные параметры заказа"
	msgSlotNotFound       = "слот выдачи не найден"
	msgSlotNotAvailable   = "слот выдачи недоступен, выберите другое время"
	msgPaymentUnavailable = "платежный сервис временно недоступен"
	msgUnauthorized       = "требуется аутентификация"
)

type Handler struct {
	useCase CreateOrderUseCase
	logger  Logger
}

func NewHandler(useCase CreateOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/orders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req CreateOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /orders - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /orders - Invalid slot date/time: date=%q, time=%q: %v", req.SlotDate, req.SlotTime, err)
		handlers.RespondBadRequest(w, msgInvalidSlotFields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createOrder.ErrInvalidInput):
			h.logger.Warn("POST /orders - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, createOrder.ErrSlotNotFound):
			h.logger.Warn("POST /orders - Slot not found: slot_id=%d, user_id=%d", req.SlotID, userID)
			handlers.RespondNotFound(w, msgSlotNotFound)
		case errors.Is(err, createOrder.ErrSlotNotAvailable):
			h.logger.Warn("POST /orders - Slot not available: slot_id=%d, user_id=%d", req.SlotID, userID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)
		case errors.Is(err, createOrder.ErrPaymentGateway):
			h.logger.Error("POST /orders - Payment gateway error: user_id=%d, error=%v", userID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgPaymentUnavailable)
		default:
			h.logger.Error("POST /orders - Failed to create order: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /orders - Order created: order_id=%d, reference=%s, user_id=%d", result.ID, result.Reference, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
