package clear_day_override

import (
	"context"

	"github.com/m04kA/Droply-AvailabilityService/internal/service/rules/models"
)

type RulesService interface {
	ClearDayOverride(ctx context.Context, req *models.ClearDayOverrideRequest) (*models.RulesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
