package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/Droply-AvailabilityService/internal/domain"
)

// MonthContext указывает месяц, к которому применяется операция (Month: 0-11)
type MonthContext struct {
	Year  int
	Month int
}

// Validate проверяет год и индекс месяца
func (m MonthContext) Validate() error {
	return validateMonth(m.Year, m.Month)
}

// BuildMonth строит последовательность ячеек календаря для месяца.
//
// Порядок: сначала пустые ячейки до первого дня (неделя начинается с понедельника),
// затем дни месяца по возрастанию. Дни раньше today не выводятся вовсе.
// Месяц передается индексом 0-11; некорректные month/year возвращают ErrInvalidArgument.
func BuildMonth(rules *Rules, year int, month int, today time.Time) ([]domain.CalendarDay, error) {
	if rules == nil {
		return nil, fmt.Errorf("%w: rules are required", ErrInvalidArgument)
	}
	if err := validateMonth(year, month); err != nil {
		return nil, err
	}

	loc := today.Location()
	todayPinned := pinDate(today)

	firstDay := time.Date(year, time.Month(month+1), 1, pinnedHour, 0, 0, 0, loc)
	padding := mondayFirstOffset(firstDay)
	days := daysInMonth(year, month, loc)

	result := make([]domain.CalendarDay, 0, padding+days)

	// 1. Пустые ячейки перед первым днем месяца
	for i := 0; i < padding; i++ {
		result = append(result, domain.CalendarDay{
			IsPadding: true,
			Slots:     []domain.TimeSlot{},
		})
	}

	// 2. Дни месяца
	for day := 1; day <= days; day++ {
		date := time.Date(year, time.Month(month+1), day, pinnedHour, 0, 0, 0, loc)

		cmp := compareDates(date, todayPinned)
		if cmp < 0 {
			// Прошедшие дни не показываем
			continue
		}

		effective := ResolveDay(rules, date)
		slots := []domain.TimeSlot{}
		if !effective.IsLocked {
			slots = GenerateSlots(effective)
		}

		result = append(result, domain.CalendarDay{
			Date:           date,
			InCurrentMonth: true,
			IsToday:        cmp == 0,
			IsPast:         false,
			Effective:      effective,
			Slots:          slots,
		})
	}

	return result, nil
}

// DaySlots возвращает действующие правила и слоты для одной даты
func DaySlots(rules *Rules, date time.Time) (domain.EffectiveDayRules, []domain.TimeSlot, error) {
	if rules == nil {
		return domain.EffectiveDayRules{}, nil, fmt.Errorf("%w: rules are required", ErrInvalidArgument)
	}

	effective := ResolveDay(rules, pinDate(date))
	return effective, GenerateSlots(effective), nil
}

// IsBefore проверяет, что дата date строго раньше даты today (время суток не учитывается)
func IsBefore(date, today time.Time) bool {
	return compareDates(date, today) < 0
}
