package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/Droply-AvailabilityService/internal/domain"
)

// pinnedHour фиксирует время суток при сравнении дат, чтобы переходы на летнее время
// не сдвигали дату
const pinnedHour = 12

// ParseDate разбирает ключ даты формата YYYY-MM-DD
func ParseDate(key string) (time.Time, error) {
	date, err := time.ParseInLocation(domain.DateFormat, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be in YYYY-MM-DD format", ErrInvalidArgument, key)
	}
	if DateKey(date) != key {
		return time.Time{}, fmt.Errorf("%w: date %q is not a canonical YYYY-MM-DD key", ErrInvalidArgument, key)
	}
	return pinDate(date), nil
}

// DateKey возвращает ключ даты формата YYYY-MM-DD
func DateKey(date time.Time) string {
	return date.Format(domain.DateFormat)
}

// IsWeekend проверяет, что дата приходится на субботу или воскресенье
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// pinDate обнуляет время суток, закрепляя дату на полдне в её же часовом поясе
func pinDate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), pinnedHour, 0, 0, 0, date.Location())
}

// compareDates сравнивает только даты: -1 если a раньше b, 0 если совпадают, 1 если позже
func compareDates(a, b time.Time) int {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	switch {
	case y1 != y2:
		return sign(y1 - y2)
	case m1 != m2:
		return sign(int(m1) - int(m2))
	default:
		return sign(d1 - d2)
	}
}

func sign(v int) int {
	if v < 0 {
		return -1
	}
	if v > 0 {
		return 1
	}
	return 0
}

// daysInMonth возвращает количество дней в месяце (month: 0-11)
func daysInMonth(year, month int, loc *time.Location) int {
	// Нулевой день следующего месяца = последний день текущего
	return time.Date(year, time.Month(month+2), 0, pinnedHour, 0, 0, 0, loc).Day()
}

// mondayFirstOffset возвращает количество пустых ячеек перед первым днём месяца
// при неделе, начинающейся с понедельника
func mondayFirstOffset(firstDay time.Time) int {
	return (int(firstDay.Weekday()) + 6) % 7
}

// weekendDatesInMonth возвращает ключи всех суббот и воскресений месяца
func weekendDatesInMonth(year, month int) []string {
	days := daysInMonth(year, month, time.Local)
	keys := make([]string, 0, 10)
	for day := 1; day <= days; day++ {
		date := time.Date(year, time.Month(month+1), day, pinnedHour, 0, 0, 0, time.Local)
		if IsWeekend(date) {
			keys = append(keys, DateKey(date))
		}
	}
	return keys
}

// monthKeyPrefix возвращает префикс ключей дат месяца ("2024-06-")
func monthKeyPrefix(year, month int) string {
	return fmt.Sprintf("%04d-%02d-", year, month+1)
}
