package set_day_override

import (
	"github.com/m04kA/Droply-AvailabilityService/internal/service/rules/models"
)

// SetDayOverrideRequest HTTP request model
// При isLocked = false обязательны workingHours и durationMinutes
type SetDayOverrideRequest struct {
	IsLocked        bool                 `json:"isLocked"`
	WorkingHours    *models.WorkingHours `json:"workingHours,omitempty"`
	DurationMinutes *int                 `json:"durationMinutes,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *SetDayOverrideRequest) ToServiceRequest(sessionID, date string) *models.SetDayOverrideRequest {
	return &models.SetDayOverrideRequest{
		SessionID:       sessionID,
		Date:            date,
		IsLocked:        r.IsLocked,
		WorkingHours:    r.WorkingHours,
		DurationMinutes: r.DurationMinutes,
	}
}
