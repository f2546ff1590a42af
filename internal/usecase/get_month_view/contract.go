package get_month_view

import (
	"context"
	"time"

	"github.com/m04kA/Droply-AvailabilityService/internal/availability"
)

// RulesProvider интерфейс получения правил сессии
type RulesProvider interface {
	// Rules возвращает копию правил сессии
	Rules(ctx context.Context, sessionID string) (*availability.Rules, error)
}

// MetricsRecorder интерфейс метрик построения календаря
type MetricsRecorder interface {
	ObserveMonthBuilt(ok bool, slots int)
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

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время в часовом поясе календаря
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
