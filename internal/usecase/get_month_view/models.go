package get_month_view

import (
	"github.com/m04kA/Droply-AvailabilityService/internal/domain"
	"github.com/m04kA/Droply-AvailabilityService/pkg/types"
)

// Request модель запроса на построение календаря месяца
type Request struct {
	SessionID string // ID сессии с правилами
	Year      int    // Год
	Month     int    // Индекс месяца 0-11
}

// Response модель ответа с ячейками календаря
type Response struct {
	Year         int   // Год
	Month        int   // Индекс месяца 0-11
	Days         []Day // Ячейки календаря: сначала пустые, затем дни месяца
	BookableDays int   // Количество дней хотя бы с одним слотом
	TotalSlots   int   // Общее количество слотов в месяце
}

// Day модель ячейки календаря
type Day struct {
	Date            string            // Дата YYYY-MM-DD, пустая для пустых ячеек
	IsPadding       bool              // Пустая ячейка до первого дня месяца
	InCurrentMonth  bool              // День принадлежит запрошенному месяцу
	IsToday         bool              // Сегодняшний день
	IsPast          bool              // Прошедший день
	IsLocked        bool              // День закрыт для бронирования
	LockReason      domain.LockReason // Причина блокировки
	Source          domain.RuleSource // Откуда взяты правила дня
	StartTime       types.TimeString  // Начало рабочего дня
	EndTime         types.TimeString  // Конец рабочего дня
	DurationMinutes int               // Длительность слота в минутах
	Slots           []Slot            // Слоты дня
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	EndTime         types.TimeString // Время окончания слота
	DurationMinutes int              // Длительность слота в минутах
}

// toDay конвертирует ячейку календаря в модель ответа
func toDay(cell *domain.CalendarDay) Day {
	if cell.IsPadding {
		return Day{IsPadding: true, Slots: []Slot{}}
	}

	slots := make([]Slot, len(cell.Slots))
	for i, s := range cell.Slots {
		slots[i] = Slot{
			StartTime:       types.NewTimeStringFromHours(s.StartHour),
			EndTime:         types.NewTimeStringFromHours(s.EndHour),
			DurationMinutes: s.DurationMinutes(),
		}
	}

	effective := cell.Effective
	return Day{
		Date:            cell.Key(),
		InCurrentMonth:  cell.InCurrentMonth,
		IsToday:         cell.IsToday,
		IsPast:          cell.IsPast,
		IsLocked:        effective.IsLocked,
		LockReason:      effective.LockReason,
		Source:          effective.Source,
		StartTime:       types.NewTimeStringFromHours(float64(effective.WorkingHours.StartHour)),
		EndTime:         types.NewTimeStringFromHours(float64(effective.WorkingHours.EndHour)),
		DurationMinutes: effective.DurationMinutes,
		Slots:           slots,
	}
}
