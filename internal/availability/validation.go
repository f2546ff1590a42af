package availability

import (
	"fmt"

	"github.com/m04kA/Droply-AvailabilityService/internal/domain"
)

// validateWorkingHours проверяет окно рабочих часов
func validateWorkingHours(hours domain.WorkingHours) error {
	if hours.StartHour < domain.MinHour || hours.StartHour > domain.MaxHour {
		return fmt.Errorf("%w: startHour must be between %d and %d", ErrInvalidArgument, domain.MinHour, domain.MaxHour)
	}
	if hours.EndHour < domain.MinHour || hours.EndHour > domain.MaxHour {
		return fmt.Errorf("%w: endHour must be between %d and %d", ErrInvalidArgument, domain.MinHour, domain.MaxHour)
	}
	if hours.StartHour >= hours.EndHour {
		return fmt.Errorf("%w: startHour (%d) must be before endHour (%d)", ErrInvalidArgument, hours.StartHour, hours.EndHour)
	}
	return nil
}

// validateDuration проверяет длительность слота
func validateDuration(durationMinutes int) error {
	if durationMinutes <= 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidArgument)
	}
	return nil
}

// validateMonth проверяет год и индекс месяца (0-11)
func validateMonth(year, month int) error {
	if month < domain.MinMonthIndex || month > domain.MaxMonthIndex {
		return fmt.Errorf("%w: month must be between %d and %d, got %d",
			ErrInvalidArgument, domain.MinMonthIndex, domain.MaxMonthIndex, month)
	}
	if year < domain.MinYear || year > domain.MaxYear {
		return fmt.Errorf("%w: year must be between %d and %d, got %d",
			ErrInvalidArgument, domain.MinYear, domain.MaxYear, year)
	}
	return nil
}
