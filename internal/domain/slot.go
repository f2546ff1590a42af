package domain

// TimeSlot represents a bookable half-open interval [StartHour, EndHour)
// expressed in fractional hours of the day (10.5 = 10:30).
type TimeSlot struct {
	StartHour float64
	EndHour   float64
}

// DurationMinutes returns the slot length in minutes
func (s TimeSlot) DurationMinutes() int {
	return int((s.EndHour-s.StartHour)*60 + 0.5)
}

// Overlaps returns true if the two half-open intervals share any time.
// Slots that only touch at a boundary do not overlap.
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	return s.StartHour < other.EndHour && other.StartHour < s.EndHour
}

// EndsAfter returns true if the slot extends past the given hour
func (s TimeSlot) EndsAfter(hour int) bool {
	return s.EndHour > float64(hour)
}
