package session

import (
	"context"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// MetricsRecorder интерфейс метрик хранилища
type MetricsRecorder interface {
	SetActiveSessions(count int)
	ObserveSessionsEvicted(count int)
}

// RunJanitor периодически удаляет неактивные сессии, пока не отменен ctx
func (r *Repository) RunJanitor(ctx context.Context, interval time.Duration, log Logger, m MetricsRecorder) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			evicted := r.EvictIdle()
			if m != nil {
				m.ObserveSessionsEvicted(evicted)
				m.SetActiveSessions(r.Count())
			}
			if evicted > 0 && log != nil {
				log.Info("Session janitor: evicted %d idle sessions, %d left", evicted, r.Count())
			}
		}
	}
}
