package get_day_slots

import (
	"github.com/m04kA/Droply-AvailabilityService/internal/domain"
	"github.com/m04kA/Droply-AvailabilityService/pkg/types"
)

// Request модель запроса на получение слотов одной даты
type Request struct {
	SessionID string // ID сессии с правилами
	Date      string // Дата YYYY-MM-DD
}

// Response модель ответа с действующими правилами и слотами даты
type Response struct {
	Date            string
	IsToday         bool
	IsLocked        bool
	LockReason      domain.LockReason
	Source          domain.RuleSource
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	Slots           []Slot
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
}

func toResponse(effective domain.EffectiveDayRules, timeSlots []domain.TimeSlot, isToday bool) *Response {
	slots := make([]Slot, len(timeSlots))
	for i, s := range timeSlots {
		slots[i] = Slot{
			StartTime:       types.NewTimeStringFromHours(s.StartHour),
			EndTime:         types.NewTimeStringFromHours(s.EndHour),
			DurationMinutes: s.DurationMinutes(),
		}
	}

	return &Response{
		Date:            effective.Date,
		IsToday:         isToday,
		IsLocked:        effective.IsLocked,
		LockReason:      effective.LockReason,
		Source:          effective.Source,
		StartTime:       types.NewTimeStringFromHours(float64(effective.WorkingHours.StartHour)),
		EndTime:         types.NewTimeStringFromHours(float64(effective.WorkingHours.EndHour)),
		DurationMinutes: effective.DurationMinutes,
		Slots:           slots,
	}
}
