package get_day_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/Droply-AvailabilityService/internal/availability"
)

// validateRequest валидирует входные данные запроса и возвращает разобранную дату
func validateRequest(req *Request) (time.Time, error) {
	if req.SessionID == "" {
		return time.Time{}, fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	date, err := availability.ParseDate(req.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return date, nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(date, now time.Time) error {
	if availability.IsBefore(date, now) {
		return fmt.Errorf("%w: %s", ErrDateInPast, availability.DateKey(date))
	}
	return nil
}
