package availability

import (
	"sort"
	"time"

	"github.com/m04kA/Droply-AvailabilityService/internal/domain"
)

// Rules represents the scheduling policy of one UI session.
//
// Поля закрыты: читать их можно через методы, а изменять только через Mutator.
// Ключи дат хранятся в формате YYYY-MM-DD.
type Rules struct {
	defaultDurationMinutes int
	workingHours           domain.WorkingHours
	lockWeekends           bool
	customRules            map[string]domain.DayOverride
	lockedDates            map[string]struct{}
}

// NewDefaultRules создает правила со значениями по умолчанию:
// слот 30 минут, рабочие часы 9-17, выходные не заблокированы
func NewDefaultRules() *Rules {
	return &Rules{
		defaultDurationMinutes: domain.DefaultSlotDurationMinutes,
		workingHours:           domain.DefaultWorkingHours(),
		lockWeekends:           domain.DefaultLockWeekends,
		customRules:            make(map[string]domain.DayOverride),
		lockedDates:            make(map[string]struct{}),
	}
}

// DefaultDurationMinutes returns the global slot duration
func (r *Rules) DefaultDurationMinutes() int {
	return r.defaultDurationMinutes
}

// WorkingHours returns the global working hours
func (r *Rules) WorkingHours() domain.WorkingHours {
	return r.workingHours
}

// LockWeekends returns true if the blanket weekend lock is on
func (r *Rules) LockWeekends() bool {
	return r.lockWeekends
}

// CustomRule returns the override for the date, if any
func (r *Rules) CustomRule(date string) (domain.DayOverride, bool) {
	override, ok := r.customRules[date]
	return override, ok
}

// HasCustomRule returns true if the date has its own hours/duration
func (r *Rules) HasCustomRule(date string) bool {
	_, ok := r.customRules[date]
	return ok
}

// IsDateLocked returns true if the date is in the locked set
func (r *Rules) IsDateLocked(date string) bool {
	_, ok := r.lockedDates[date]
	return ok
}

// CustomRuleEntry пара дата + правило для упорядоченной выдачи
type CustomRuleEntry struct {
	Date     string
	Override domain.DayOverride
}

// CustomRules возвращает копию переопределений, отсортированную по дате
func (r *Rules) CustomRules() []CustomRuleEntry {
	entries := make([]CustomRuleEntry, 0, len(r.customRules))
	for date, override := range r.customRules {
		entries = append(entries, CustomRuleEntry{Date: date, Override: override})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})
	return entries
}

// LockedDates возвращает отсортированный список заблокированных дат
func (r *Rules) LockedDates() []string {
	dates := make([]string, 0, len(r.lockedDates))
	for date := range r.lockedDates {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// Clone возвращает глубокую копию правил
func (r *Rules) Clone() *Rules {
	clone := &Rules{
		defaultDurationMinutes: r.defaultDurationMinutes,
		workingHours:           r.workingHours,
		lockWeekends:           r.lockWeekends,
		customRules:            make(map[string]domain.DayOverride, len(r.customRules)),
		lockedDates:            make(map[string]struct{}, len(r.lockedDates)),
	}
	for date, override := range r.customRules {
		clone.customRules[date] = override
	}
	for date := range r.lockedDates {
		clone.lockedDates[date] = struct{}{}
	}
	return clone
}

// ResolveDay вычисляет действующие правила для даты.
// Явная блокировка имеет высший приоритет, затем собственное правило даты,
// которое освобождает день от блокировки выходных.
func ResolveDay(r *Rules, day time.Time) domain.EffectiveDayRules {
	date := DateKey(day)
	effective := domain.EffectiveDayRules{
		Date:            date,
		WorkingHours:    r.workingHours,
		DurationMinutes: r.defaultDurationMinutes,
		Source:          domain.RuleSourceDefault,
		LockReason:      domain.LockReasonNone,
	}

	override, hasCustom := r.customRules[date]
	if hasCustom {
		effective.WorkingHours = override.WorkingHours
		effective.DurationMinutes = override.DurationMinutes
		effective.Source = domain.RuleSourceCustom
	}

	switch {
	case r.IsDateLocked(date):
		effective.IsLocked = true
		effective.LockReason = domain.LockReasonExplicit
	case IsWeekend(day) && r.lockWeekends && !hasCustom:
		effective.IsLocked = true
		effective.LockReason = domain.LockReasonWeekend
	}

	return effective
}
