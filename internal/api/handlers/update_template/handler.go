package update_template

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
	msgInvalidTemplateID  = "некорректный идентификатор шаблона"
	msgTemplateNotFound   = "шаблон не найден"
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

// Handle PATCH /api/v1/cafes/{cafeId}/slots/{templateId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	cafeID, err := strconv.ParseInt(vars["cafeId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCafeID)
		return
	}

	templateID, err := strconv.ParseInt(vars["templateId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTemplateID)
		return
	}

	var req UpdateTemplateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), cafeID, templateID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, templatesService.ErrTemplateNotFound):
			h.logger.Warn("PATCH /slots - Template not found: template_id=%d, cafe_id=%d", templateID, cafeID)
			handlers.RespondNotFound(w, msgTemplateNotFound)
		case errors.Is(err, templatesService.ErrInvalidInput):
			h.logger.Warn("PATCH /slots - Invalid input: template_id=%d", templateID)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("PATCH /slots - Failed to update template: template_id=%d, error=%v", templateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /slots - Template updated: template_id=%d, cafe_id=%d", templateID, cafeID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
