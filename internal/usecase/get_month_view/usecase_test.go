package get_month_view

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Droply-AvailabilityService/internal/availability"
	"github.com/m04kA/Droply-AvailabilityService/internal/domain"
	rulesService "github.com/m04kA/Droply-AvailabilityService/internal/service/rules"
	"github.com/m04kA/Droply-AvailabilityService/pkg/logger"
)

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type stubRulesProvider struct {
	rules *availability.Rules
	err   error
	calls int
}

func (s *stubRulesProvider) Rules(_ context.Context, _ string) (*availability.Rules, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.rules.Clone(), nil
}

type monthMetrics struct {
	ok    []bool
	slots int
}

func (m *monthMetrics) ObserveMonthBuilt(ok bool, slots int) {
	m.ok = append(m.ok, ok)
	m.slots = slots
}

// 15 июня 2024, суббота
var testToday = time.Date(2024, time.June, 15, 9, 30, 0, 0, time.Local)

func newTestUseCase(provider RulesProvider) (*UseCase, *monthMetrics) {
	m := &monthMetrics{}
	uc := NewUseCase(provider, m, time.Local, logger.NewNop())
	uc.timeProvider = fixedTime{now: testToday}
	return uc, m
}

func TestUseCase_CurrentMonthSkipsPastDays(t *testing.T) {
	uc, m := newTestUseCase(&stubRulesProvider{rules: availability.NewDefaultRules()})

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "s1", Year: 2024, Month: 5})
	require.NoError(t, err)

	// 1 июня 2024 суббота: 5 пустых ячеек, затем дни с 15 по 30
	require.Len(t, resp.Days, 5+16)
	for i := 0; i < 5; i++ {
		assert.True(t, resp.Days[i].IsPadding)
		assert.Empty(t, resp.Days[i].Date)
		assert.Empty(t, resp.Days[i].Slots)
	}

	first := resp.Days[5]
	assert.Equal(t, "2024-06-15", first.Date)
	assert.True(t, first.IsToday)
	assert.False(t, first.IsPast)
	assert.True(t, first.InCurrentMonth)
	assert.Equal(t, domain.RuleSourceDefault, first.Source)
	assert.Equal(t, "09:00", first.StartTime.String())
	assert.Equal(t, "17:00", first.EndTime.String())
	require.Len(t, first.Slots, 16)
	assert.Equal(t, "09:00", first.Slots[0].StartTime.String())
	assert.Equal(t, "09:30", first.Slots[0].EndTime.String())
	assert.Equal(t, 30, first.Slots[0].DurationMinutes)

	assert.Equal(t, "2024-06-30", resp.Days[len(resp.Days)-1].Date)
	assert.False(t, resp.Days[6].IsToday)

	assert.Equal(t, 16, resp.BookableDays)
	assert.Equal(t, 16*16, resp.TotalSlots)
	assert.Equal(t, []bool{true}, m.ok)
	assert.Equal(t, 256, m.slots)
}

func TestUseCase_LockedWeekends(t *testing.T) {
	rules := availability.NewDefaultRules()
	mutator := availability.NewMutator(availability.WeekendUnlockAll)
	require.NoError(t, mutator.SetWeekendLock(rules, true, availability.MonthContext{Year: 2024, Month: 5}))

	uc, _ := newTestUseCase(&stubRulesProvider{rules: rules})

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "s1", Year: 2024, Month: 5})
	require.NoError(t, err)

	today := resp.Days[5]
	assert.True(t, today.IsLocked)
	assert.Equal(t, domain.LockReasonExplicit, today.LockReason)
	assert.Empty(t, today.Slots)

	// 15, 16, 22, 23, 29, 30 заблокированы
	assert.Equal(t, 10, resp.BookableDays)
	assert.Equal(t, 10*16, resp.TotalSlots)
}

func TestUseCase_FutureMonthWithoutPadding(t *testing.T) {
	uc, _ := newTestUseCase(&stubRulesProvider{rules: availability.NewDefaultRules()})

	// 1 июля 2024 понедельник
	resp, err := uc.Execute(context.Background(), &Request{SessionID: "s1", Year: 2024, Month: 6})
	require.NoError(t, err)

	require.Len(t, resp.Days, 31)
	assert.Equal(t, "2024-07-01", resp.Days[0].Date)
	assert.False(t, resp.Days[0].IsPadding)
	for _, day := range resp.Days {
		assert.False(t, day.IsToday)
	}
}

func TestUseCase_PastMonthHasOnlyPadding(t *testing.T) {
	uc, _ := newTestUseCase(&stubRulesProvider{rules: availability.NewDefaultRules()})

	// 1 мая 2024 среда
	resp, err := uc.Execute(context.Background(), &Request{SessionID: "s1", Year: 2024, Month: 4})
	require.NoError(t, err)

	require.Len(t, resp.Days, 2)
	assert.True(t, resp.Days[0].IsPadding)
	assert.True(t, resp.Days[1].IsPadding)
	assert.Zero(t, resp.TotalSlots)
}

func TestUseCase_ValidationErrors(t *testing.T) {
	provider := &stubRulesProvider{rules: availability.NewDefaultRules()}
	uc, _ := newTestUseCase(provider)

	tests := []struct {
		name string
		req  Request
	}{
		{"empty session", Request{Year: 2024, Month: 5}},
		{"month too large", Request{SessionID: "s1", Year: 2024, Month: 12}},
		{"negative month", Request{SessionID: "s1", Year: 2024, Month: -1}},
		{"zero year", Request{SessionID: "s1", Year: 0, Month: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
	assert.Zero(t, provider.calls)
}

func TestUseCase_SessionErrors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, _ := newTestUseCase(&stubRulesProvider{err: rulesService.ErrSessionNotFound})
		_, err := uc.Execute(context.Background(), &Request{SessionID: "s1", Year: 2024, Month: 5})
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("internal", func(t *testing.T) {
		uc, _ := newTestUseCase(&stubRulesProvider{err: errors.New("boom")})
		_, err := uc.Execute(context.Background(), &Request{SessionID: "s1", Year: 2024, Month: 5})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
