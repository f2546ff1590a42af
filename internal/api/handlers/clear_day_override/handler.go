package clear_day_override

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/Droply-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/Droply-AvailabilityService/internal/service/rules"
	"github.com/m04kA/Droply-AvailabilityService/internal/service/rules/models"
)

const (
	msgSessionNotFound = "сессия не найдена"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service RulesService
	logger  Logger
}

func NewHandler(service RulesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/sessions/{sessionId}/days/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]
	date := vars["date"]

	result, err := h.service.ClearDayOverride(r.Context(), &models.ClearDayOverrideRequest{
		SessionID: sessionID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, rules.ErrSessionNotFound):
			h.logger.Warn("DELETE /sessions/{id}/days/{date} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, rules.ErrInvalidInput):
			h.logger.Warn("DELETE /sessions/{id}/days/{date} - Invalid date: session_id=%s, date=%s", sessionID, date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("DELETE /sessions/{id}/days/{date} - Failed to clear day override: session_id=%s, date=%s, error=%v",
				sessionID, date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /sessions/{id}/days/{date} - Day override cleared: session_id=%s, date=%s", sessionID, date)
	handlers.RespondJSON(w, http.StatusOK, result)
}
