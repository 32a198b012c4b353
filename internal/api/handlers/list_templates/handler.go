package list_templates

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tapcafe/TapCafe-SlotService/internal/api/handlers"
)

const msgInvalidCafeID = "некорректный идентификатор кафе"

type Handler struct {
	service TemplatesService
	logger  Logger
}

func NewHandler(service TemplatesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/cafes/{cafeId}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cafeID, err := strconv.ParseInt(mux.Vars(r)["cafeId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCafeID)
		return
	}

	result, err := h.service.List(r.Context(), cafeID)
	if err != nil {
		h.logger.Error("GET /slots - Failed to list templates: cafe_id=%d, error=%v", cafeID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
