package get_month_view

import (
	"github.com/m04kA/Droply-AvailabilityService/internal/api/handlers"
	getMonthView "github.com/m04kA/Droply-AvailabilityService/internal/usecase/get_month_view"
	"github.com/m04kA/Droply-AvailabilityService/pkg/types"
)

// MonthViewResponse HTTP response model
// Month: индекс месяца 0-11
type MonthViewResponse struct {
	Year         int           `json:"year"`
	Month        int           `json:"month"`
	BookableDays int           `json:"bookableDays"`
	TotalSlots   int           `json:"totalSlots"`
	Days         []DayResponse `json:"days"`
}

// DayResponse HTTP модель ячейки календаря
// Для пустых ячеек заполнен только isPadding
type DayResponse struct {
	Date            string           `json:"date,omitempty"`
	IsPadding       bool             `json:"isPadding"`
	InCurrentMonth  bool             `json:"inCurrentMonth"`
	IsToday         bool             `json:"isToday"`
	IsPast          bool             `json:"isPast"`
	IsLocked        bool             `json:"isLocked"`
	LockReason      string           `json:"lockReason,omitempty"`
	Source          string           `json:"source,omitempty"`
	StartTime       types.TimeString `json:"startTime,omitempty"`
	EndTime         types.TimeString `json:"endTime,omitempty"`
	DurationMinutes int              `json:"durationMinutes,omitempty"`
	Slots           []SlotResponse   `json:"slots"`
}

// SlotResponse HTTP модель слота
type SlotResponse struct {
	StartTime       types.TimeString `json:"startTime"`
	EndTime         types.TimeString `json:"endTime"`
	DurationMinutes int              `json:"durationMinutes"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(sessionID, month string) (*getMonthView.Request, error) {
	year, monthIndex, err := handlers.ParseMonth(month)
	if err != nil {
		return nil, err
	}

	return &getMonthView.Request{
		SessionID: sessionID,
		Year:      year,
		Month:     monthIndex,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getMonthView.Response) *MonthViewResponse {
	days := make([]DayResponse, len(resp.Days))
	for i, day := range resp.Days {
		slots := make([]SlotResponse, len(day.Slots))
		for j, s := range day.Slots {
			slots[j] = SlotResponse{
				StartTime:       s.StartTime,
				EndTime:         s.EndTime,
				DurationMinutes: s.DurationMinutes,
			}
		}

		days[i] = DayResponse{
			Date:            day.Date,
			IsPadding:       day.IsPadding,
			InCurrentMonth:  day.InCurrentMonth,
			IsToday:         day.IsToday,
			IsPast:          day.IsPast,
			IsLocked:        day.IsLocked,
			LockReason:      string(day.LockReason),
			Source:          string(day.Source),
			StartTime:       day.StartTime,
			EndTime:         day.EndTime,
			DurationMinutes: day.DurationMinutes,
			Slots:           slots,
		}
	}

	return &MonthViewResponse{
		Year:         resp.Year,
		Month:        resp.Month,
		BookableDays: resp.BookableDays,
		TotalSlots:   resp.TotalSlots,
		Days:         days,
	}
}
