package get_rules

import (
	"context"

	"github.com/m04kA/Droply-AvailabilityService/internal/service/rules/models"
)

type RulesService interface {
	GetRules(ctx context.Context, sessionID string) (*models.RulesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
