package get_day_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/Droply-AvailabilityService/internal/api/handlers"
	getDaySlots "github.com/m04kA/Droply-AvailabilityService/internal/usecase/get_day_slots"
)

const (
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateInPast      = "дата уже прошла"
	msgSessionNotFound = "сессия не найдена"
)

type Handler struct {
	useCase GetDaySlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetDaySlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/sessions/{sessionId}/days/{date}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]
	date := vars["date"]

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(sessionID, date))
	if err != nil {
		switch {
		case errors.Is(err, getDaySlots.ErrInvalidInput):
			h.logger.Warn("GET /sessions/{id}/days/{date}/slots - Invalid date: session_id=%s, date=%s", sessionID, date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getDaySlots.ErrDateInPast):
			h.logger.Warn("GET /sessions/{id}/days/{date}/slots - Date in past: session_id=%s, date=%s", sessionID, date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getDaySlots.ErrSessionNotFound):
			h.logger.Warn("GET /sessions/{id}/days/{date}/slots - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("GET /sessions/{id}/days/{date}/slots - Failed to get slots: session_id=%s, date=%s, error=%v",
				sessionID, date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sessions/{id}/days/{date}/slots - Slots retrieved successfully: session_id=%s, date=%s, slots_count=%d",
		sessionID, date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
