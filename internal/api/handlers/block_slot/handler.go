package block_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tapcafe/TapCafe-SlotService/internal/api/handlers"
	slotsService "github.com/tapcafe/TapCafe-SlotService/internal/service/slots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlotID      = "некорректный идентификатор слота"
	msgSlotNotFound       = "слот не найден"
)

// BlockSlotRequest HTTP request model
type BlockSlotRequest struct {
	Blocked bool `json:"blocked"`
}

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

// Handle PATCH /api/v1/availability/{slotId}/block
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID, err := strconv.ParseInt(mux.Vars(r)["slotId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	var req BlockSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /availability/block - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SetBlocked(r.Context(), slotID, req.Blocked); err != nil {
		if errors.Is(err, slotsService.ErrSlotNotFound) {
			h.logger.Warn("PATCH /availability/block - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)
			return
		}
		h.logger.Error("PATCH /availability/block - Failed: slot_id=%d, error=%v", slotID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /availability/block - Slot updated: slot_id=%d, blocked=%t", slotID, req.Blocked)
	w.WriteHeader(http.StatusNoContent)
}
