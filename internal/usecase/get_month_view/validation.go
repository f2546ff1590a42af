package get_month_view

import (
	"fmt"

	"github.com/m04kA/Droply-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	if req.Month < domain.MinMonthIndex || req.Month > domain.MaxMonthIndex {
		return fmt.Errorf("%w: month must be between %d and %d", ErrInvalidInput, domain.MinMonthIndex, domain.MaxMonthIndex)
	}

	if req.Year < domain.MinYear || req.Year > domain.MaxYear {
		return fmt.Errorf("%w: year must be between %d and %d", ErrInvalidInput, domain.MinYear, domain.MaxYear)
	}

	return nil
}
