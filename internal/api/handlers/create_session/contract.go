package create_session

import (
	"context"

	"github.com/m04kA/Droply-AvailabilityService/internal/service/rules/models"
)

type RulesService interface {
	CreateSession(ctx context.Context) (*models.RulesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
