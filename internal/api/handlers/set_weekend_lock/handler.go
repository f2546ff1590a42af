package set_weekend_lock

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/Droply-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/Droply-AvailabilityService/internal/service/rules"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса, ожидается enabled и month в формате YYYY-MM"
	msgSessionNotFound    = "сессия не найдена"
	msgInvalidData        = "некорректный месяц"
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

// Handle PUT /api/v1/sessions/{sessionId}/rules/weekend-lock
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SetWeekendLockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/rules/weekend-lock - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(sessionID)
	if err != nil {
		h.logger.Warn("PUT /sessions/{id}/rules/weekend-lock - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetWeekendLock(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, rules.ErrSessionNotFound):
			h.logger.Warn("PUT /sessions/{id}/rules/weekend-lock - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, rules.ErrInvalidInput):
			h.logger.Warn("PUT /sessions/{id}/rules/weekend-lock - Invalid data: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /sessions/{id}/rules/weekend-lock - Failed to set weekend lock: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /sessions/{id}/rules/weekend-lock - Weekend lock updated: session_id=%s, enabled=%t, locked_dates=%d",
		sessionID, result.LockWeekends, len(result.LockedDates))
	handlers.RespondJSON(w, http.StatusOK, result)
}
