package update_defaults

import (
	"errors"

	"github.com/m04kA/Droply-AvailabilityService/internal/service/rules/models"
)

// UpdateDefaultsRequest HTTP request model
type UpdateDefaultsRequest struct {
	DurationMinutes *int                 `json:"durationMinutes"`
	WorkingHours    *models.WorkingHours `json:"workingHours"`
}

// Validate проверяет наличие обязательных полей
func (r *UpdateDefaultsRequest) Validate() error {
	if r.DurationMinutes == nil {
		return errors.New("durationMinutes is required")
	}
	if r.WorkingHours == nil {
		return errors.New("workingHours is required")
	}
	return nil
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateDefaultsRequest) ToServiceRequest(sessionID string) *models.UpdateDefaultsRequest {
	return &models.UpdateDefaultsRequest{
		SessionID:       sessionID,
		DurationMinutes: *r.DurationMinutes,
		WorkingHours:    *r.WorkingHours,
	}
}
