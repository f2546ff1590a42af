package get_day_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Droply-AvailabilityService/internal/availability"
	rulesService "github.com/m04kA/Droply-AvailabilityService/internal/service/rules"
)

// UseCase use case для получения слотов одной даты
type UseCase struct {
	rulesProvider RulesProvider
	metrics       MetricsRecorder
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	rulesProvider RulesProvider,
	metrics MetricsRecorder,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		rulesProvider: rulesProvider,
		metrics:       metrics,
		timeProvider:  &RealTimeProvider{Location: location},
		logger:        logger,
	}
}

// Execute выполняет use case получения слотов даты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySlots: session=%s, date=%s", req.SessionID, req.Date)

	// 1. Валидация входных данных
	date, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetDaySlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Прошедшие даты не отдаем
	now := uc.timeProvider.Now()
	if err := validateDate(date, now); err != nil {
		uc.logger.Warn("GetDaySlots: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем правила сессии
	rules, err := uc.rulesProvider.Rules(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, rulesService.ErrSessionNotFound) {
			uc.logger.Warn("GetDaySlots: session=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("GetDaySlots: failed to get rules for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to get rules: %v", ErrInternal, err)
	}

	// 4. Вычисляем действующие правила и слоты
	effective, slots, err := availability.DaySlots(rules, date)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to resolve date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to resolve day: %v", ErrInternal, err)
	}

	uc.metrics.ObserveSlotsGenerated(len(slots))
	uc.logger.Info("GetDaySlots: session=%s, date=%s: %d slots, locked=%t",
		req.SessionID, req.Date, len(slots), effective.IsLocked)

	return toResponse(effective, slots, !availability.IsBefore(now, date)), nil
}
