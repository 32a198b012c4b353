package create_template

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tapcafe/TapCafe-SlotService/internal/api/handlers"
	templatesService "github.com/tapcafe/TapCafe-SlotService/internal/service/templates"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCafeID      = "некорректный идентификатор кафе"
	msgInvalidTime        = "некорректный формат времени слота, ожидается HH:MM"
	msgDuplicateTemplate  = "слот на это время уже существует"
	msgInvalidInput       = "некорректные параметры шаблона"
)

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

// Handle POST /api/v1/cafes/{cafeId}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	cafeID, err := strconv.ParseInt(mux.Vars(r)["cafeId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCafeID)
		return
	}

	var req CreateTemplateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(cafeID)
	if err != nil {
		h.logger.Warn("POST /slots - Invalid slot time %q: %v", req.SlotTime, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, templatesService.ErrDuplicateTemplate):
			h.logger.Warn("POST /slots - Duplicate template: cafe_id=%d, time=%s", cafeID, req.SlotTime)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateTemplate)
		case errors.Is(err, templatesService.ErrInvalidInput):
			h.logger.Warn("POST /slots - Invalid input: cafe_id=%d", cafeID)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /slots - Failed to create template: cafe_id=%d, error=%v", cafeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots - Template created: template_id=%d, cafe_id=%d", result.ID, cafeID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
