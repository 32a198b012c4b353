package delete_template

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tapcafe/TapCafe-SlotService/internal/api/handlers"
	templatesService "github.com/tapcafe/TapCafe-SlotService/internal/service/templates"
)

const (
	msgInvalidCafeID     = "некорректный идентификатор кафе"
	msgInvalidTemplateID = "некорректный идентификатор шаблона"
	msgTemplateNotFound  = "шаблон не найден"
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

// Handle DELETE /api/v1/cafes/{cafeId}/slots/{templateId}
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

	if err := h.service.Delete(r.Context(), cafeID, templateID); err != nil {
		if errors.Is(err, templatesService.ErrTemplateNotFound) {
			h.logger.Warn("DELETE /slots - Template not found: template_id=%d, cafe_id=%d", templateID, cafeID)
			handlers.RespondNotFound(w, msgTemplateNotFound)
			return
		}
		h.logger.Error("DELETE /slots - Failed to delete template: template_id=%d, error=%v", templateID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /slots - Template deleted: template_id=%d, cafe_id=%d", templateID, cafeID)
	w.WriteHeader(http.StatusNoContent)
}
