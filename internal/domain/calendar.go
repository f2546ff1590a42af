package domain

import "time"

// RuleSource показывает, откуда взяты правила для конкретной даты
type RuleSource string

const (
	RuleSourceDefault RuleSource = "default"
	RuleSourceCustom  RuleSource = "custom"
)

// LockReason объясняет, почему день закрыт для бронирования
type LockReason string

const (
	LockReasonNone     LockReason = ""
	LockReasonExplicit LockReason = "explicit"
	LockReasonWeekend  LockReason = "weekend"
)

// EffectiveDayRules represents the rules that actually apply to one date
// after custom overrides, explicit locks and the weekend lock are resolved
type EffectiveDayRules struct {
	Date            string // YYYY-MM-DD
	WorkingHours    WorkingHours
	DurationMinutes int
	IsLocked        bool
	Source          RuleSource
	LockReason      LockReason
}

// CalendarDay represents one cell of a month grid
type CalendarDay struct {
	Date           time.Time // zero for padding cells
	InCurrentMonth bool
	IsPadding      bool
	IsToday        bool
	IsPast         bool
	Effective      EffectiveDayRules
	Slots          []TimeSlot
}

// Key returns the ISO date key of the day, or an empty string for padding cells
func (d *CalendarDay) Key() string {
	if d.IsPadding || d.Date.IsZero() {
		return ""
	}
	return d.Date.Format(DateFormat)
}

// IsBookable returns true if the day offers at least one slot
func (d *CalendarDay) IsBookable() bool {
	return !d.IsPadding && !d.Effective.IsLocked && len(d.Slots) > 0
}
