package set_weekend_lock

import (
	"context"

	"github.com/m04kA/Droply-AvailabilityService/internal/service/rules/models"
)

type RulesService interface {
	SetWeekendLock(ctx context.Context, req *models.SetWeekendLockRequest) (*models.RulesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
