package handlers

import (
	"fmt"
	"time"

	"github.com/m04kA/Droply-AvailabilityService/internal/domain"
)

// ParseMonth разбирает месяц формата YYYY-MM и возвращает год и индекс месяца 0-11
func ParseMonth(value string) (year int, month int, err error) {
	parsed, err := time.Parse(domain.MonthFormat, value)
	if err != nil {
		return 0, 0, fmt.Errorf("month %q must be in YYYY-MM format", value)
	}
	if parsed.Format(domain.MonthFormat) != value {
		return 0, 0, fmt.Errorf("month %q must be in YYYY-MM format", value)
	}
	return parsed.Year(), int(parsed.Month()) - 1, nil
}
