package get_day_slots

import (
	getDaySlots "github.com/m04kA/Droply-AvailabilityService/internal/usecase/get_day_slots"
	"github.com/m04kA/Droply-AvailabilityService/pkg/types"
)

// DaySlotsResponse HTTP response model
type DaySlotsResponse struct {
	Date            string           `json:"date"`
	IsToday         bool             `json:"isToday"`
	IsLocked        bool             `json:"isLocked"`
	LockReason      string           `json:"lockReason,omitempty"`
	Source          string           `json:"source"`
	StartTime       types.TimeString `json:"startTime"`
	EndTime         types.TimeString `json:"endTime"`
	DurationMinutes int              `json:"durationMinutes"`
	Slots           []SlotResponse   `json:"slots"`
}

// SlotResponse HTTP модель слота
type SlotResponse struct {
	StartTime       types.TimeString `json:"startTime"`
	EndTime         types.TimeString `json:"endTime"`
	DurationMinutes int              `json:"durationMinutes"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(sessionID, date string) *getDaySlots.Request {
	return &getDaySlots.Request{
		SessionID: sessionID,
		Date:      date,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getDaySlots.Response) *DaySlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime:       s.StartTime,
			EndTime:         s.EndTime,
			DurationMinutes: s.DurationMinutes,
		}
	}

	return &DaySlotsResponse{
		Date:            resp.Date,
		IsToday:         resp.IsToday,
		IsLocked:        resp.IsLocked,
		LockReason:      string(resp.LockReason),
		Source:          string(resp.Source),
		StartTime:       resp.StartTime,
		EndTime:         resp.EndTime,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
