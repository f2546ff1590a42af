package rules

import (
	"context"
	"time"

	"github.com/m04kA/Droply-AvailabilityService/internal/availability"
	"github.com/m04kA/Droply-AvailabilityService/internal/infra/storage/session"
)

// SessionRepository интерфейс хранилища сессий
type SessionRepository interface {
	Create(ctx context.Context, rules *availability.Rules) (*session.Session, error)
	Get(ctx context.Context, id string) (*session.Session, error)
	Update(ctx context.Context, id string, fn func(rules *availability.Rules) error) (*session.Session, error)
	Delete(ctx context.Context, id string) error
	Count() int
}

// MetricsRecorder интерфейс метрик сервиса
type MetricsRecorder interface {
	ObserveRuleMutation(operation string, ok bool)
	SetActiveSessions(count int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
