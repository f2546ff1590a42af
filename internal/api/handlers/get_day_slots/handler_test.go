package get_day_slots

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/Droply-AvailabilityService/internal/domain"
	getDaySlots "github.com/m04kA/Droply-AvailabilityService/internal/usecase/get_day_slots"
	"github.com/m04kA/Droply-AvailabilityService/pkg/logger"
	"github.com/m04kA/Droply-AvailabilityService/pkg/types"
)

type stubUseCase struct {
	got  *getDaySlots.Request
	resp *getDaySlots.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *getDaySlots.Request) (*getDaySlots.Response, error) {
	s.got = req
	return s.resp, s.err
}

func newRequest() *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/abc/days/2024-06-20/slots", nil)
	return mux.SetURLVars(req, map[string]string{"sessionId": "abc", "date": "2024-06-20"})
}

func TestHandler_Handle_OK(t *testing.T) {
	useCase := &stubUseCase{resp: &getDaySlots.Response{
		Date:            "2024-06-20",
		Source:          domain.RuleSourceCustom,
		StartTime:       types.TimeString("10:00"),
		EndTime:         types.TimeString("11:00"),
		DurationMinutes: 30,
		Slots: []getDaySlots.Slot{
			{StartTime: "10:00", EndTime: "10:30", DurationMinutes: 30},
			{StartTime: "10:30", EndTime: "11:00", DurationMinutes: 30},
		},
	}}
	h := NewHandler(useCase, logger.NewNop())
	rec := httptest.NewRecorder()

	h.Handle(rec, newRequest())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, &getDaySlots.Request{SessionID: "abc", Date: "2024-06-20"}, useCase.got)
	assert.JSONEq(t, `{
		"date": "2024-06-20",
		"isToday": false,
		"isLocked": false,
		"source": "custom",
		"startTime": "10:00",
		"endTime": "11:00",
		"durationMinutes": 30,
		"slots": [
			{"startTime": "10:00", "endTime": "10:30", "durationMinutes": 30},
			{"startTime": "10:30", "endTime": "11:00", "durationMinutes": 30}
		]
	}`, rec.Body.String())
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid date", getDaySlots.ErrInvalidInput, http.StatusBadRequest},
		{"past date", getDaySlots.ErrDateInPast, http.StatusBadRequest},
		{"not found", getDaySlots.ErrSessionNotFound, http.StatusNotFound},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, logger.NewNop())
			rec := httptest.NewRecorder()

			h.Handle(rec, newRequest())

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
