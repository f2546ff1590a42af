package rules

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Droply-AvailabilityService/internal/availability"
	"github.com/m04kA/Droply-AvailabilityService/internal/domain"
	"github.com/m04kA/Droply-AvailabilityService/internal/infra/storage/session"
	"github.com/m04kA/Droply-AvailabilityService/internal/service/rules/models"
)

// Названия операций для метрик
const (
	opCreateSession    = "create_session"
	opUpdateDefaults   = "update_defaults"
	opSetWeekendLock   = "set_weekend_lock"
	opSetDayOverride   = "set_day_override"
	opClearDayOverride = "clear_day_override"
)

// SessionDefaults правила, с которыми создается новая сессия
type SessionDefaults struct {
	DurationMinutes int
	WorkingHours    domain.WorkingHours
	LockWeekends    bool
}

// DefaultSessionDefaults возвращает встроенные значения по умолчанию
func DefaultSessionDefaults() SessionDefaults {
	return SessionDefaults{
		DurationMinutes: domain.DefaultSlotDurationMinutes,
		WorkingHours:    domain.DefaultWorkingHours(),
		LockWeekends:    domain.DefaultLockWeekends,
	}
}

// Service сервис для работы с правилами доступности сессии
type Service struct {
	repo         SessionRepository
	mutator      *availability.Mutator
	defaults     SessionDefaults
	timeProvider TimeProvider
	metrics      MetricsRecorder
	logger       Logger
}

// NewService создает новый экземпляр сервиса правил
func NewService(
	repo SessionRepository,
	mutator *availability.Mutator,
	defaults SessionDefaults,
	timeProvider TimeProvider,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	return &Service{
		repo:         repo,
		mutator:      mutator,
		defaults:     defaults,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
	}
}

// CreateSession создает сессию с правилами по умолчанию
// Если по умолчанию включена блокировка выходных, выходные текущего месяца блокируются явно
func (s *Service) CreateSession(ctx context.Context) (*models.RulesResponse, error) {
	s.logger.Info("CreateSession: creating session with defaults duration=%d, hours=%d-%d, lockWeekends=%t",
		s.defaults.DurationMinutes, s.defaults.WorkingHours.StartHour, s.defaults.WorkingHours.EndHour, s.defaults.LockWeekends)

	rules, err := s.initialRules()
	if err != nil {
		s.logger.Error("CreateSession: invalid session defaults: %v", err)
		s.metrics.ObserveRuleMutation(opCreateSession, false)
		return nil, fmt.Errorf("%w: invalid session defaults: %v", ErrInternal, err)
	}

	created, err := s.repo.Create(ctx, rules)
	if err != nil {
		s.metrics.ObserveRuleMutation(opCreateSession, false)
		if errors.Is(err, session.ErrTooManySessions) {
			s.logger.Warn("CreateSession: session limit reached")
			return nil, ErrTooManySessions
		}
		s.logger.Error("CreateSession: failed to store session: %v", err)
		return nil, fmt.Errorf("%w: failed to store session: %v", ErrInternal, err)
	}

	s.metrics.ObserveRuleMutation(opCreateSession, true)
	s.metrics.SetActiveSessions(s.repo.Count())
	s.logger.Info("CreateSession: session=%s created", created.ID)

	return models.FromRules(created.ID, created.Rules, s.mutator.UnlockScope()), nil
}

// GetRules возвращает текущие правила сессии
func (s *Service) GetRules(ctx context.Context, sessionID string) (*models.RulesResponse, error) {
	found, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, s.mapRepoError("GetRules", sessionID, err)
	}

	return models.FromRules(found.ID, found.Rules, s.mutator.UnlockScope()), nil
}

// Rules возвращает копию правил сессии для построения календаря
func (s *Service) Rules(ctx context.Context, sessionID string) (*availability.Rules, error) {
	found, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, s.mapRepoError("Rules", sessionID, err)
	}
	return found.Rules, nil
}

// DeleteSession удаляет сессию
func (s *Service) DeleteSession(ctx context.Context, sessionID string) error {
	s.logger.Info("DeleteSession: deleting session=%s", sessionID)

	if err := s.repo.Delete(ctx, sessionID); err != nil {
		return s.mapRepoError("DeleteSession", sessionID, err)
	}

	s.metrics.SetActiveSessions(s.repo.Count())
	s.logger.Info("DeleteSession: session=%s deleted", sessionID)
	return nil
}

// UpdateDefaults заменяет глобальные длительность слота и рабочие часы
func (s *Service) UpdateDefaults(ctx context.Context, req *models.UpdateDefaultsRequest) (*models.RulesResponse, error) {
	s.logger.Info("UpdateDefaults: session=%s, duration=%d, hours=%d-%d",
		req.SessionID, req.DurationMinutes, req.WorkingHours.StartHour, req.WorkingHours.EndHour)

	return s.mutate(ctx, opUpdateDefaults, req.SessionID, func(rules *availability.Rules) error {
		return s.mutator.SetGlobalDefaults(rules, req.ToDefaultsUpdate())
	})
}

// SetWeekendLock включает или выключает блокировку выходных
// Включение дополнительно блокирует выходные указанного месяца
func (s *Service) SetWeekendLock(ctx context.Context, req *models.SetWeekendLockRequest) (*models.RulesResponse, error) {
	s.logger.Info("SetWeekendLock: session=%s, enabled=%t, month=%04d-%02d",
		req.SessionID, req.Enabled, req.Year, req.Month+1)

	return s.mutate(ctx, opSetWeekendLock, req.SessionID, func(rules *availability.Rules) error {
		return s.mutator.SetWeekendLock(rules, req.Enabled, req.ToMonthContext())
	})
}

// SetDayOverride блокирует дату или задает ей собственные правила
func (s *Service) SetDayOverride(ctx context.Context, req *models.SetDayOverrideRequest) (*models.RulesResponse, error) {
	s.logger.Info("SetDayOverride: session=%s, date=%s, locked=%t", req.SessionID, req.Date, req.IsLocked)

	return s.mutate(ctx, opSetDayOverride, req.SessionID, func(rules *availability.Rules) error {
		return s.mutator.SetDayOverride(rules, req.Date, req.ToDayOverrideUpdate())
	})
}

// ClearDayOverride возвращает дату к правилам по умолчанию
func (s *Service) ClearDayOverride(ctx context.Context, req *models.ClearDayOverrideRequest) (*models.RulesResponse, error) {
	s.logger.Info("ClearDayOverride: session=%s, date=%s", req.SessionID, req.Date)

	return s.mutate(ctx, opClearDayOverride, req.SessionID, func(rules *availability.Rules) error {
		return s.mutator.ClearDayOverride(rules, req.Date)
	})
}

// mutate применяет изменение к правилам сессии атомарно
func (s *Service) mutate(
	ctx context.Context,
	operation string,
	sessionID string,
	fn func(rules *availability.Rules) error,
) (*models.RulesResponse, error) {
	updated, err := s.repo.Update(ctx, sessionID, fn)
	if err != nil {
		s.metrics.ObserveRuleMutation(operation, false)
		if errors.Is(err, availability.ErrInvalidArgument) {
			s.logger.Warn("%s: session=%s rejected: %v", operation, sessionID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, s.mapRepoError(operation, sessionID, err)
	}

	s.metrics.ObserveRuleMutation(operation, true)
	return models.FromRules(updated.ID, updated.Rules, s.mutator.UnlockScope()), nil
}

// initialRules собирает правила новой сессии из значений по умолчанию
func (s *Service) initialRules() (*availability.Rules, error) {
	rules := availability.NewDefaultRules()

	err := s.mutator.SetGlobalDefaults(rules, availability.DefaultsUpdate{
		DurationMinutes: s.defaults.DurationMinutes,
		WorkingHours:    s.defaults.WorkingHours,
	})
	if err != nil {
		return nil, err
	}

	if s.defaults.LockWeekends {
		now := s.timeProvider.Now()
		current := availability.MonthContext{Year: now.Year(), Month: int(now.Month()) - 1}
		if err := s.mutator.SetWeekendLock(rules, true, current); err != nil {
			return nil, err
		}
	}

	return rules, nil
}

// mapRepoError переводит ошибки хранилища в ошибки сервиса
func (s *Service) mapRepoError(operation, sessionID string, err error) error {
	switch {
	case errors.Is(err, session.ErrSessionNotFound), errors.Is(err, session.ErrInvalidSessionID):
		s.logger.Warn("%s: session=%s not found", operation, sessionID)
		return ErrSessionNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		s.logger.Warn("%s: session=%s request cancelled: %v", operation, sessionID, err)
		return err
	default:
		s.logger.Error("%s: session=%s storage failure: %v", operation, sessionID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
