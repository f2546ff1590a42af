package set_weekend_lock

import (
	"errors"

	"github.com/m04kA/Droply-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/Droply-AvailabilityService/internal/service/rules/models"
)

// SetWeekendLockRequest HTTP request model
// Month: месяц в формате YYYY-MM, выходные которого блокируются
type SetWeekendLockRequest struct {
	Enabled *bool  `json:"enabled"`
	Month   string `json:"month"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *SetWeekendLockRequest) ToServiceRequest(sessionID string) (*models.SetWeekendLockRequest, error) {
	if r.Enabled == nil {
		return nil, errors.New("enabled is required")
	}

	year, month, err := handlers.ParseMonth(r.Month)
	if err != nil {
		return nil, err
	}

	return &models.SetWeekendLockRequest{
		SessionID: sessionID,
		Enabled:   *r.Enabled,
		Year:      year,
		Month:     month,
	}, nil
}
