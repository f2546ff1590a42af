package availability

import (
	"fmt"
	"strings"

	"github.com/m04kA/Droply-AvailabilityService/internal/domain"
)

// WeekendUnlockScope определяет, какие заблокированные выходные снимаются
// при выключении блокировки выходных
type WeekendUnlockScope string

const (
	// WeekendUnlockAll снимает блокировку со всех известных выходных дат, в любом месяце
	WeekendUnlockAll WeekendUnlockScope = "all"
	// WeekendUnlockMonth снимает блокировку только с выходных указанного месяца
	WeekendUnlockMonth WeekendUnlockScope = "month"
)

// ParseWeekendUnlockScope разбирает значение политики из конфигурации
func ParseWeekendUnlockScope(value string) (WeekendUnlockScope, error) {
	switch scope := WeekendUnlockScope(strings.ToLower(strings.TrimSpace(value))); scope {
	case WeekendUnlockAll, WeekendUnlockMonth:
		return scope, nil
	case "":
		return WeekendUnlockAll, nil
	default:
		return "", fmt.Errorf("%w: unknown weekend unlock scope %q", ErrInvalidArgument, value)
	}
}

// DefaultsUpdate новые глобальные значения по умолчанию
type DefaultsUpdate struct {
	DurationMinutes int
	WorkingHours    domain.WorkingHours
}

// DayOverrideUpdate изменение правил конкретной даты.
// При IsLocked = false обязательны WorkingHours и DurationMinutes.
type DayOverrideUpdate struct {
	IsLocked        bool
	WorkingHours    *domain.WorkingHours
	DurationMinutes *int
}

// Mutator единственный, кто изменяет Rules.
// Каждая операция сначала валидирует вход и только потом пишет,
// поэтому при ошибке правила остаются без изменений.
type Mutator struct {
	unlockScope WeekendUnlockScope
}

// NewMutator создает мутатор с указанной политикой снятия блокировки выходных
func NewMutator(unlockScope WeekendUnlockScope) *Mutator {
	if unlockScope == "" {
		unlockScope = WeekendUnlockAll
	}
	return &Mutator{unlockScope: unlockScope}
}

// UnlockScope возвращает политику снятия блокировки выходных
func (m *Mutator) UnlockScope() WeekendUnlockScope {
	return m.unlockScope
}

// SetGlobalDefaults заменяет глобальные длительность слота и рабочие часы
func (m *Mutator) SetGlobalDefaults(rules *Rules, update DefaultsUpdate) error {
	if rules == nil {
		return fmt.Errorf("%w: rules are required", ErrInvalidArgument)
	}
	if err := validateDuration(update.DurationMinutes); err != nil {
		return err
	}
	if err := validateWorkingHours(update.WorkingHours); err != nil {
		return err
	}

	rules.defaultDurationMinutes = update.DurationMinutes
	rules.workingHours = update.WorkingHours
	return nil
}

// SetWeekendLock включает или выключает блокировку выходных.
//
// При включении все выходные месяца monthContext без собственного правила
// добавляются в заблокированные даты. При выключении из заблокированных дат
// удаляются выходные: все известные (WeekendUnlockAll) или только месяца
// monthContext (WeekendUnlockMonth). Снимаются и выходные, заблокированные вручную.
func (m *Mutator) SetWeekendLock(rules *Rules, enabled bool, monthContext MonthContext) error {
	if rules == nil {
		return fmt.Errorf("%w: rules are required", ErrInvalidArgument)
	}
	if err := monthContext.Validate(); err != nil {
		return err
	}

	rules.lockWeekends = enabled

	if enabled {
		for _, date := range weekendDatesInMonth(monthContext.Year, monthContext.Month) {
			if rules.HasCustomRule(date) {
				continue
			}
			rules.lockedDates[date] = struct{}{}
		}
		return nil
	}

	prefix := monthKeyPrefix(monthContext.Year, monthContext.Month)
	for date := range rules.lockedDates {
		if m.unlockScope == WeekendUnlockMonth && !strings.HasPrefix(date, prefix) {
			continue
		}
		day, err := ParseDate(date)
		if err != nil {
			// Ключи попадают в набор только через ParseDate, так что сюда не дойдем
			continue
		}
		if IsWeekend(day) {
			delete(rules.lockedDates, date)
		}
	}
	return nil
}

// SetDayOverride задает правила для одной даты.
//
// IsLocked = true: собственное правило даты удаляется, дата блокируется.
// IsLocked = false: дата получает собственные часы и длительность и разблокируется.
// Собственное правило всегда важнее блокировки выходных.
func (m *Mutator) SetDayOverride(rules *Rules, date string, update DayOverrideUpdate) error {
	if rules == nil {
		return fmt.Errorf("%w: rules are required", ErrInvalidArgument)
	}
	if _, err := ParseDate(date); err != nil {
		return err
	}

	if update.IsLocked {
		delete(rules.customRules, date)
		rules.lockedDates[date] = struct{}{}
		return nil
	}

	if update.WorkingHours == nil {
		return fmt.Errorf("%w: workingHours are required for an unlocked day", ErrInvalidArgument)
	}
	if update.DurationMinutes == nil {
		return fmt.Errorf("%w: durationMinutes is required for an unlocked day", ErrInvalidArgument)
	}
	if err := validateDuration(*update.DurationMinutes); err != nil {
		return err
	}
	if err := validateWorkingHours(*update.WorkingHours); err != nil {
		return err
	}

	rules.customRules[date] = domain.DayOverride{
		WorkingHours:    *update.WorkingHours,
		DurationMinutes: *update.DurationMinutes,
	}
	delete(rules.lockedDates, date)
	return nil
}

// ClearDayOverride возвращает дату к правилам по умолчанию:
// удаляет собственное правило и явную блокировку
func (m *Mutator) ClearDayOverride(rules *Rules, date string) error {
	if rules == nil {
		return fmt.Errorf("%w: rules are required", ErrInvalidArgument)
	}
	if _, err := ParseDate(date); err != nil {
		return err
	}

	delete(rules.customRules, date)
	delete(rules.lockedDates, date)
	return nil
}

// DayState состояние даты в правилах
type DayState string

const (
	DayStateDefault DayState = "default"
	DayStateCustom  DayState = "custom"
	DayStateLocked  DayState = "locked"
)

// StateOf возвращает хранимое состояние даты.
// Неявная блокировка выходных здесь не учитывается: она вычисляется при построении календаря.
func StateOf(rules *Rules, date string) DayState {
	switch {
	case rules.IsDateLocked(date):
		return DayStateLocked
	case rules.HasCustomRule(date):
		return DayStateCustom
	default:
		return DayStateDefault
	}
}
