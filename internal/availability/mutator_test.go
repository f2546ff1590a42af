package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Droply-AvailabilityService/internal/domain"
)

func TestMutator_SetGlobalDefaults(t *testing.T) {
	rules := NewDefaultRules()
	mutator := NewMutator(WeekendUnlockAll)

	err := mutator.SetGlobalDefaults(rules, DefaultsUpdate{
		DurationMinutes: 60,
		WorkingHours:    domain.WorkingHours{StartHour: 8, EndHour: 12},
	})
	require.NoError(t, err)

	assert.Equal(t, 60, rules.DefaultDurationMinutes())
	assert.Equal(t, domain.WorkingHours{StartHour: 8, EndHour: 12}, rules.WorkingHours())
}

func TestMutator_SetGlobalDefaults_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		update DefaultsUpdate
	}{
		{"zero duration", DefaultsUpdate{DurationMinutes: 0, WorkingHours: domain.WorkingHours{StartHour: 9, EndHour: 17}}},
		{"negative duration", DefaultsUpdate{DurationMinutes: -30, WorkingHours: domain.WorkingHours{StartHour: 9, EndHour: 17}}},
		{"start equals end", DefaultsUpdate{DurationMinutes: 30, WorkingHours: domain.WorkingHours{StartHour: 12, EndHour: 12}}},
		{"start after end", DefaultsUpdate{DurationMinutes: 30, WorkingHours: domain.WorkingHours{StartHour: 18, EndHour: 9}}},
		{"end out of range", DefaultsUpdate{DurationMinutes: 30, WorkingHours: domain.WorkingHours{StartHour: 9, EndHour: 24}}},
		{"negative start", DefaultsUpdate{DurationMinutes: 30, WorkingHours: domain.WorkingHours{StartHour: -1, EndHour: 9}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := NewDefaultRules()
			before := rules.Clone()

			err := NewMutator(WeekendUnlockAll).SetGlobalDefaults(rules, tt.update)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Equal(t, before, rules)
		})
	}
}

func TestMutator_SetWeekendLock_Enable(t *testing.T) {
	rules := NewDefaultRules()
	mutator := NewMutator(WeekendUnlockAll)

	require.NoError(t, mutator.SetWeekendLock(rules, true, MonthContext{Year: 2024, Month: 5}))

	assert.True(t, rules.LockWeekends())
	assert.Equal(t, []string{
		"2024-06-01", "2024-06-02",
		"2024-06-08", "2024-06-09",
		"2024-06-15", "2024-06-16",
		"2024-06-22", "2024-06-23",
		"2024-06-29", "2024-06-30",
	}, rules.LockedDates())
}

func TestMutator_SetWeekendLock_SkipsCustomDates(t *testing.T) {
	rules := NewDefaultRules()
	mutator := NewMutator(WeekendUnlockAll)
	require.NoError(t, mutator.SetDayOverride(rules, "2024-06-15", DayOverrideUpdate{
		WorkingHours:    &domain.WorkingHours{StartHour: 10, EndHour: 14},
		DurationMinutes: intPtr(60),
	}))

	require.NoError(t, mutator.SetWeekendLock(rules, true, MonthContext{Year: 2024, Month: 5}))

	assert.False(t, rules.IsDateLocked("2024-06-15"))
	assert.True(t, rules.HasCustomRule("2024-06-15"))
	assert.True(t, rules.IsDateLocked("2024-06-16"))
}

func TestMutator_SetWeekendLock_DisableScope(t *testing.T) {
	tests := []struct {
		name          string
		scope         WeekendUnlockScope
		expectedAfter []string
	}{
		{
			name:          "all tracked weekend dates",
			scope:         WeekendUnlockAll,
			expectedAfter: []string{"2024-06-12"},
		},
		{
			name:  "only the given month",
			scope: WeekendUnlockMonth,
			expectedAfter: []string{
				"2024-06-12",
				"2024-07-06", "2024-07-07",
				"2024-07-13", "2024-07-14",
				"2024-07-20", "2024-07-21",
				"2024-07-27", "2024-07-28",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := NewDefaultRules()
			mutator := NewMutator(tt.scope)

			require.NoError(t, mutator.SetWeekendLock(rules, true, MonthContext{Year: 2024, Month: 5}))
			require.NoError(t, mutator.SetWeekendLock(rules, true, MonthContext{Year: 2024, Month: 6}))
			// Будний день, заблокированный вручную, не снимается
			require.NoError(t, mutator.SetDayOverride(rules, "2024-06-12", DayOverrideUpdate{IsLocked: true}))

			require.NoError(t, mutator.SetWeekendLock(rules, false, MonthContext{Year: 2024, Month: 5}))

			assert.False(t, rules.LockWeekends())
			assert.Equal(t, tt.expectedAfter, rules.LockedDates())
		})
	}
}

func TestMutator_SetWeekendLock_DisableClearsManualWeekendLocks(t *testing.T) {
	rules := NewDefaultRules()
	mutator := NewMutator(WeekendUnlockAll)
	require.NoError(t, mutator.SetDayOverride(rules, "2024-09-07", DayOverrideUpdate{IsLocked: true}))

	require.NoError(t, mutator.SetWeekendLock(rules, false, MonthContext{Year: 2024, Month: 5}))

	assert.False(t, rules.IsDateLocked("2024-09-07"))
}

func TestMutator_SetWeekendLock_InvalidMonth(t *testing.T) {
	rules := NewDefaultRules()
	before := rules.Clone()

	err := NewMutator(WeekendUnlockAll).SetWeekendLock(rules, true, MonthContext{Year: 2024, Month: 12})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, before, rules)
}

func TestMutator_SetDayOverride_StateTransitions(t *testing.T) {
	rules := NewDefaultRules()
	mutator := NewMutator(WeekendUnlockAll)
	const date = "2024-06-03"

	assert.Equal(t, DayStateDefault, StateOf(rules, date))

	// Default -> CustomOverride
	require.NoError(t, mutator.SetDayOverride(rules, date, DayOverrideUpdate{
		WorkingHours:    &domain.WorkingHours{StartHour: 10, EndHour: 12},
		DurationMinutes: intPtr(60),
	}))
	assert.Equal(t, DayStateCustom, StateOf(rules, date))
	override, ok := rules.CustomRule(date)
	require.True(t, ok)
	assert.Equal(t, domain.DayOverride{
		WorkingHours:    domain.WorkingHours{StartHour: 10, EndHour: 12},
		DurationMinutes: 60,
	}, override)

	// CustomOverride -> ExplicitlyLocked
	require.NoError(t, mutator.SetDayOverride(rules, date, DayOverrideUpdate{IsLocked: true}))
	assert.Equal(t, DayStateLocked, StateOf(rules, date))
	assert.False(t, rules.HasCustomRule(date))

	// ExplicitlyLocked -> CustomOverride
	require.NoError(t, mutator.SetDayOverride(rules, date, DayOverrideUpdate{
		WorkingHours:    &domain.WorkingHours{StartHour: 13, EndHour: 15},
		DurationMinutes: intPtr(30),
	}))
	assert.Equal(t, DayStateCustom, StateOf(rules, date))
	assert.False(t, rules.IsDateLocked(date))

	// CustomOverride -> Default
	require.NoError(t, mutator.ClearDayOverride(rules, date))
	assert.Equal(t, DayStateDefault, StateOf(rules, date))
}

func TestMutator_SetDayOverride_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		date   string
		update DayOverrideUpdate
	}{
		{"malformed date", "2024-6-3", DayOverrideUpdate{IsLocked: true}},
		{"impossible date", "2024-02-30", DayOverrideUpdate{IsLocked: true}},
		{"empty date", "", DayOverrideUpdate{IsLocked: true}},
		{"missing hours", "2024-06-03", DayOverrideUpdate{DurationMinutes: intPtr(30)}},
		{"missing duration", "2024-06-03", DayOverrideUpdate{WorkingHours: &domain.WorkingHours{StartHour: 9, EndHour: 10}}},
		{"zero duration", "2024-06-03", DayOverrideUpdate{
			WorkingHours:    &domain.WorkingHours{StartHour: 9, EndHour: 10},
			DurationMinutes: intPtr(0),
		}},
		{"inverted hours", "2024-06-03", DayOverrideUpdate{
			WorkingHours:    &domain.WorkingHours{StartHour: 11, EndHour: 10},
			DurationMinutes: intPtr(30),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := NewDefaultRules()
			mutator := NewMutator(WeekendUnlockAll)
			require.NoError(t, mutator.SetDayOverride(rules, "2024-06-03", DayOverrideUpdate{IsLocked: true}))
			before := rules.Clone()

			err := mutator.SetDayOverride(rules, tt.date, tt.update)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Equal(t, before, rules)
		})
	}
}

func TestMutator_ClearDayOverride_InvalidDate(t *testing.T) {
	err := NewMutator(WeekendUnlockAll).ClearDayOverride(NewDefaultRules(), "tomorrow")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestMutator_NilRules(t *testing.T) {
	mutator := NewMutator(WeekendUnlockAll)

	assert.ErrorIs(t, mutator.SetGlobalDefaults(nil, DefaultsUpdate{}), ErrInvalidArgument)
	assert.ErrorIs(t, mutator.SetWeekendLock(nil, true, MonthContext{Year: 2024, Month: 5}), ErrInvalidArgument)
	assert.ErrorIs(t, mutator.SetDayOverride(nil, "2024-06-03", DayOverrideUpdate{IsLocked: true}), ErrInvalidArgument)
	assert.ErrorIs(t, mutator.ClearDayOverride(nil, "2024-06-03"), ErrInvalidArgument)
}

func TestParseWeekendUnlockScope(t *testing.T) {
	scope, err := ParseWeekendUnlockScope("Month")
	require.NoError(t, err)
	assert.Equal(t, WeekendUnlockMonth, scope)

	scope, err = ParseWeekendUnlockScope("")
	require.NoError(t, err)
	assert.Equal(t, WeekendUnlockAll, scope)

	_, err = ParseWeekendUnlockScope("rolling")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	assert.Equal(t, WeekendUnlockAll, NewMutator("").UnlockScope())
}
