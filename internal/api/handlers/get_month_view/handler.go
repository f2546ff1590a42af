package get_month_view

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/Droply-AvailabilityService/internal/api/handlers"
	getMonthView "github.com/m04kA/Droply-AvailabilityService/internal/usecase/get_month_view"
)

const (
	msgMissingMonth    = "месяц обязателен"
	msgInvalidMonth    = "некорректный формат месяца, ожидается YYYY-MM"
	msgSessionNotFound = "сессия не найдена"
)

type Handler struct {
	useCase GetMonthViewUseCase
	logger  Logger
}

func NewHandler(useCase GetMonthViewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/sessions/{sessionId}/calendar
// Query params: month (required, YYYY-MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	// Извлекаем month из query параметров
	month := r.URL.Query().Get("month")
	if month == "" {
		h.logger.Warn("GET /sessions/{id}/calendar - Missing month")
		handlers.RespondBadRequest(w, msgMissingMonth)
		return
	}

	useCaseReq, err := ToUseCaseRequest(sessionID, month)
	if err != nil {
		h.logger.Warn("GET /sessions/{id}/calendar - Invalid month format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getMonthView.ErrInvalidInput):
			h.logger.Warn("GET /sessions/{id}/calendar - Invalid input: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		case errors.Is(err, getMonthView.ErrSessionNotFound):
			h.logger.Warn("GET /sessions/{id}/calendar - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("GET /sessions/{id}/calendar - Failed to build calendar: session_id=%s, month=%s, error=%v",
				sessionID, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sessions/{id}/calendar - Calendar built successfully: session_id=%s, month=%s, days=%d, slots=%d",
		sessionID, month, len(result.Days), result.TotalSlots)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
