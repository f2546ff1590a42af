package set_day_override

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/Droply-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/Droply-AvailabilityService/internal/service/rules"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSessionNotFound    = "сессия не найдена"
	msgInvalidData        = "некорректные правила даты"
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

// Handle PUT /api/v1/sessions/{sessionId}/days/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]
	date := vars["date"]

	var req SetDayOverrideRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/days/{date} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Формат даты и обязательные поля проверяет сервис
	result, err := h.service.SetDayOverride(r.Context(), req.ToServiceRequest(sessionID, date))
	if err != nil {
		switch {
		case errors.Is(err, rules.ErrSessionNotFound):
			h.logger.Warn("PUT /sessions/{id}/days/{date} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, rules.ErrInvalidInput):
			h.logger.Warn("PUT /sessions/{id}/days/{date} - Invalid data: session_id=%s, date=%s, error=%v", sessionID, date, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /sessions/{id}/days/{date} - Failed to set day override: session_id=%s, date=%s, error=%v",
				sessionID, date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /sessions/{id}/days/{date} - Day override set: session_id=%s, date=%s, locked=%t",
		sessionID, date, req.IsLocked)
	handlers.RespondJSON(w, http.StatusOK, result)
}
