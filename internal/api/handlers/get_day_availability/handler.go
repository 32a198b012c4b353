package get_day_availability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/tapcafe/TapCafe-SlotService/internal/api/handlers"
	"github.com/tapcafe/TapCafe-SlotService/internal/domain"
)

const (
	msgInvalidCafeID = "некорректный идентификатор кафе"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateRequired  = "параметр date обязателен"
)

type Handler struct {
	service SlotsService
	logger  Logger
}

func NewHandler(service SlotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/cafes/{cafeId}/availability?date=YYYY-MM-DD
// Админский просмотр: прошедшие слоты не отфильтровываются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cafeID, err := strconv.ParseInt(mux.Vars(r)["cafeId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCafeID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		handlers.RespondBadRequest(w, msgDateRequired)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	slots, err := h.service.DayAvailability(r.Context(), cafeID, date)
	if err != nil {
		h.logger.Error("GET /availability - Failed: cafe_id=%d, date=%s, error=%v", cafeID, dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainSlots(cafeID, date, slots))
}
