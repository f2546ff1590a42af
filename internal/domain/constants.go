package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes = 30
	DefaultStartHour           = 9
	DefaultEndHour             = 17
	DefaultLockWeekends        = false
)

// Business validation constants
const (
	MinHour = 0
	MaxHour = 23

	MinSlotDurationMinutes = 1
	MaxSlotDurationMinutes = 480 // 8 hours

	MinYear = 1
	MaxYear = 9999

	// Месяцы на границе движка нумеруются с нуля (0 = январь)
	MinMonthIndex = 0
	MaxMonthIndex = 11
)

// Time format constants
const (
	TimeFormat  = "15:04"      // HH:MM
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)
