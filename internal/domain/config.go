package domain

// WorkingHours represents a working-hours window in whole hours of a day.
// The window is valid when StartHour < EndHour and both are within 0..23.
type WorkingHours struct {
	StartHour int
	EndHour   int
}

// IsValid returns true if the window is non-empty and within the day
func (w WorkingHours) IsValid() bool {
	return w.StartHour >= MinHour && w.EndHour <= MaxHour && w.StartHour < w.EndHour
}

// LengthMinutes returns the window length in minutes
func (w WorkingHours) LengthMinutes() int {
	return (w.EndHour - w.StartHour) * 60
}

// DayOverride represents a per-date rule that replaces the global defaults
type DayOverride struct {
	WorkingHours    WorkingHours
	DurationMinutes int
}

// DefaultWorkingHours returns the working hours a fresh session starts with
func DefaultWorkingHours() WorkingHours {
	return WorkingHours{StartHour: DefaultStartHour, EndHour: DefaultEndHour}
}
