package get_rules

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/Droply-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/Droply-AvailabilityService/internal/service/rules"
)

const (
	msgSessionNotFound = "сессия не найдена"
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

// Handle GET /api/v1/sessions/{sessionId}/rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.service.GetRules(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, rules.ErrSessionNotFound):
			h.logger.Warn("GET /sessions/{id}/rules - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("GET /sessions/{id}/rules - Failed to get rules: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sessions/{id}/rules - Rules retrieved successfully: session_id=%s, custom_rules=%d, locked_dates=%d",
		sessionID, len(result.CustomRules), len(result.LockedDates))
	handlers.RespondJSON(w, http.StatusOK, result)
}
