package get_user_orders

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tapcafe/TapCafe-SlotService/internal/api/handlers"
	"github.com/tapcafe/TapCafe-SlotService/internal/api/middleware"
)

const (
	msgInvalidUserID = "некорректный идентификатор пользователя"
	msgAccessDenied  = "нет доступа к заказам этого пользователя"
	msgUnauthorized  = "требуется аутентификация"
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

// Handle GET /api/v1/users/{userId}/orders
// Пользователь видит только свою историю; персонал кафе - любую
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	authUserID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	if userID != authUserID && !middleware.IsStaffFromContext(r.Context()) {
		h.logger.Warn("GET /users/orders - Access denied: user_id=%d requested orders of user_id=%d", authUserID, userID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	result, err := h.service.GetUserOrders(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /users/orders - Failed: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(userID, result))
}
