package init_templates

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tapcafe/TapCafe-SlotService/internal/api/handlers"
)

const msgInvalidCafeID = "некорректный идентификатор кафе"

// InitializeResponse HTTP response model
type InitializeResponse struct {
	Created       int  `json:"created"`
	AlreadyExists bool `json:"alreadyExists"`
}

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

// Handle POST /api/v1/cafes/{cafeId}/slots/init
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cafeID, err := strconv.ParseInt(mux.Vars(r)["cafeId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCafeID)
		return
	}

	result, err := h.service.Initialize(r.Context(), cafeID)
	if err != nil {
		h.logger.Error("POST /slots/init - Failed to initialize templates: cafe_id=%d, error=%v", cafeID, err)
		handlers.RespondInternalError(w)
		return
	}

	status := http.StatusCreated
	if result.AlreadyExists {
		status = http.StatusOK
	}

	handlers.RespondJSON(w, status, InitializeResponse{
		Created:       result.Created,
		AlreadyExists: result.AlreadyExists,
	})
}
