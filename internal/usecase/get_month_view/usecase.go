package get_month_view

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Droply-AvailabilityService/internal/availability"
	rulesService "github.com/m04kA/Droply-AvailabilityService/internal/service/rules"
)

// UseCase use case для построения календаря месяца с доступными слотами
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

// Execute выполняет use case построения календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetMonthView: session=%s, month=%04d-%02d", req.SessionID, req.Year, req.Month+1)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetMonthView: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем правила сессии
	rules, err := uc.rulesProvider.Rules(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, rulesService.ErrSessionNotFound) {
			uc.logger.Warn("GetMonthView: session=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("GetMonthView: failed to get rules for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to get rules: %v", ErrInternal, err)
	}

	// 3. Строим календарь относительно сегодняшнего дня
	today := uc.timeProvider.Now()
	cells, err := availability.BuildMonth(rules, req.Year, req.Month, today)
	if err != nil {
		uc.metrics.ObserveMonthBuilt(false, 0)
		if errors.Is(err, availability.ErrInvalidArgument) {
			uc.logger.Warn("GetMonthView: invalid month: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("GetMonthView: failed to build month: %v", err)
		return nil, fmt.Errorf("%w: failed to build month: %v", ErrInternal, err)
	}

	// 4. Конвертируем ячейки в ответ
	resp := &Response{
		Year:  req.Year,
		Month: req.Month,
		Days:  make([]Day, len(cells)),
	}
	for i := range cells {
		resp.Days[i] = toDay(&cells[i])
		resp.TotalSlots += len(cells[i].Slots)
		if cells[i].IsBookable() {
			resp.BookableDays++
		}
	}

	uc.metrics.ObserveMonthBuilt(true, resp.TotalSlots)
	uc.logger.Info("GetMonthView: session=%s, month=%04d-%02d built: %d cells, %d bookable days, %d slots",
		req.SessionID, req.Year, req.Month+1, len(resp.Days), resp.BookableDays, resp.TotalSlots)

	return resp, nil
}
