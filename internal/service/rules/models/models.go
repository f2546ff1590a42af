package models

import (
	"github.com/m04kA/Droply-AvailabilityService/internal/availability"
	"github.com/m04kA/Droply-AvailabilityService/internal/domain"
)

// Request модели

// WorkingHours рабочие часы в целых часах
type WorkingHours struct {
	StartHour int `json:"startHour"`
	EndHour   int `json:"endHour"`
}

// UpdateDefaultsRequest запрос на изменение глобальных правил
type UpdateDefaultsRequest struct {
	SessionID       string       `json:"-"`
	DurationMinutes int          `json:"durationMinutes"`
	WorkingHours    WorkingHours `json:"workingHours"`
}

// SetWeekendLockRequest запрос на включение/выключение блокировки выходных
// Month: индекс месяца 0-11
type SetWeekendLockRequest struct {
	SessionID string `json:"-"`
	Enabled   bool   `json:"enabled"`
	Year      int    `json:"year"`
	Month     int    `json:"month"`
}

// SetDayOverrideRequest запрос на изменение правил одной даты
// При IsLocked = false обязательны WorkingHours и DurationMinutes
type SetDayOverrideRequest struct {
	SessionID       string        `json:"-"`
	Date            string        `json:"-"`
	IsLocked        bool          `json:"isLocked"`
	WorkingHours    *WorkingHours `json:"workingHours,omitempty"`
	DurationMinutes *int          `json:"durationMinutes,omitempty"`
}

// ClearDayOverrideRequest запрос на возврат даты к правилам по умолчанию
type ClearDayOverrideRequest struct {
	SessionID string `json:"-"`
	Date      string `json:"-"`
}

// Response модели

// CustomRuleResponse собственное правило даты
type CustomRuleResponse struct {
	Date            string       `json:"date"`
	WorkingHours    WorkingHours `json:"workingHours"`
	DurationMinutes int          `json:"durationMinutes"`
}

// RulesResponse ответ с правилами сессии
type RulesResponse struct {
	SessionID              string               `json:"sessionId"`
	DefaultDurationMinutes int                  `json:"defaultDurationMinutes"`
	WorkingHours           WorkingHours         `json:"workingHours"`
	LockWeekends           bool                 `json:"lockWeekends"`
	WeekendUnlockScope     string               `json:"weekendUnlockScope"`
	CustomRules            []CustomRuleResponse `json:"customRules"`
	LockedDates            []string             `json:"lockedDates"`
}

// Методы конвертации

// ToDomain конвертирует DTO рабочих часов в domain модель
func (w WorkingHours) ToDomain() domain.WorkingHours {
	return domain.WorkingHours{StartHour: w.StartHour, EndHour: w.EndHour}
}

// FromDomainWorkingHours конвертирует domain модель в DTO
func FromDomainWorkingHours(w domain.WorkingHours) WorkingHours {
	return WorkingHours{StartHour: w.StartHour, EndHour: w.EndHour}
}

// ToDefaultsUpdate конвертирует запрос в изменение для мутатора
func (r *UpdateDefaultsRequest) ToDefaultsUpdate() availability.DefaultsUpdate {
	return availability.DefaultsUpdate{
		DurationMinutes: r.DurationMinutes,
		WorkingHours:    r.WorkingHours.ToDomain(),
	}
}

// ToMonthContext возвращает месяц, к которому применяется блокировка
func (r *SetWeekendLockRequest) ToMonthContext() availability.MonthContext {
	return availability.MonthContext{Year: r.Year, Month: r.Month}
}

// ToDayOverrideUpdate конвертирует запрос в изменение для мутатора
func (r *SetDayOverrideRequest) ToDayOverrideUpdate() availability.DayOverrideUpdate {
	update := availability.DayOverrideUpdate{
		IsLocked:        r.IsLocked,
		DurationMinutes: r.DurationMinutes,
	}
	if r.WorkingHours != nil {
		hours := r.WorkingHours.ToDomain()
		update.WorkingHours = &hours
	}
	return update
}

// FromRules конвертирует правила сессии в DTO
func FromRules(sessionID string, rules *availability.Rules, scope availability.WeekendUnlockScope) *RulesResponse {
	if rules == nil {
		return nil
	}

	entries := rules.CustomRules()
	customRules := make([]CustomRuleResponse, len(entries))
	for i, entry := range entries {
		customRules[i] = CustomRuleResponse{
			Date:            entry.Date,
			WorkingHours:    FromDomainWorkingHours(entry.Override.WorkingHours),
			DurationMinutes: entry.Override.DurationMinutes,
		}
	}

	return &RulesResponse{
		SessionID:              sessionID,
		DefaultDurationMinutes: rules.DefaultDurationMinutes(),
		WorkingHours:           FromDomainWorkingHours(rules.WorkingHours()),
		LockWeekends:           rules.LockWeekends(),
		WeekendUnlockScope:     string(scope),
		CustomRules:            customRules,
		LockedDates:            rules.LockedDates(),
	}
}
