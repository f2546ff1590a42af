package create_session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Droply-AvailabilityService/internal/service/rules"
	"github.com/m04kA/Droply-AvailabilityService/internal/service/rules/models"
	"github.com/m04kA/Droply-AvailabilityService/pkg/logger"
)

type stubService struct {
	resp *models.RulesResponse
	err  error
}

func (s *stubService) CreateSession(_ context.Context) (*models.RulesResponse, error) {
	return s.resp, s.err
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name       string
		service    *stubService
		wantStatus int
	}{
		{
			name:       "created",
			service:    &stubService{resp: &models.RulesResponse{SessionID: "abc", DefaultDurationMinutes: 30}},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "session limit",
			service:    &stubService{err: rules.ErrTooManySessions},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "internal",
			service:    &stubService{err: errors.New("boom")},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(tt.service, logger.NewNop())
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil)

			h.Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusCreated {
				var body models.RulesResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, "abc", body.SessionID)
				assert.Equal(t, 30, body.DefaultDurationMinutes)
			}
		})
	}
}
