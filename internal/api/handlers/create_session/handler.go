package create_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/Droply-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/Droply-AvailabilityService/internal/service/rules"
)

const (
	msgTooManySessions = "достигнут лимит активных сессий, попробуйте позже"
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

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.CreateSession(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, rules.ErrTooManySessions):
			h.logger.Warn("POST /sessions - Session limit reached")
			handlers.RespondServiceUnavailable(w, msgTooManySessions)

		default:
			h.logger.Error("POST /sessions - Failed to create session: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions - Session created successfully: session_id=%s", result.SessionID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
