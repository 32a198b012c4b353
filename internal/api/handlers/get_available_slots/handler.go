package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tapcafe/TapCafe-SlotService/internal/api/handlers"
	getAvailableSlots "github.com/tapcafe/TapCafe-SlotService/internal/usecase/get_available_slots"
)

const (
	msgInvalidCafeID = "некорректный идентификатор кафе"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateRequired  = "параметр date обязателен"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/cafes/{cafeId}/available-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cafeID, err := strconv.ParseInt(mux.Vars(r)["cafeId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid cafe id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCafeID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		handlers.RespondBadRequest(w, msgDateRequired)
		return
	}

	useCaseReq, err := ToUseCaseRequest(cafeID, dateStr)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if errors.Is(err, getAvailableSlots.ErrInvalidInput) {
			h.logger.Warn("GET /available-slots - Invalid input: cafe_id=%d", cafeID)
			handlers.RespondBadRequest(w, msgInvalidCafeID)
			return
		}
		h.logger.Error("GET /available-slots - Failed: cafe_id=%d, error=%v", cafeID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
