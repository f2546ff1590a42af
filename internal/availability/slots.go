package availability

import "github.com/m04kA/Droply-AvailabilityService/internal/domain"

// GenerateSlots генерирует список слотов на день по действующим правилам.
//
// Функция тотальна: для закрытого дня возвращается пустой список.
// Слоты генерируются от начала рабочих часов с шагом durationMinutes, пока начало
// слота раньше конца рабочих часов. Последний слот не обрезается и может
// заканчиваться позже endHour (например, 9-17 с шагом 45 минут даёт слот 16:30-17:15).
func GenerateSlots(effective domain.EffectiveDayRules) []domain.TimeSlot {
	if effective.IsLocked || effective.DurationMinutes <= 0 {
		return []domain.TimeSlot{}
	}

	hours := effective.WorkingHours
	if hours.StartHour >= hours.EndHour {
		return []domain.TimeSlot{}
	}

	// Считаем в целых минутах, чтобы шаг вроде 20 минут не накапливал погрешность
	start := hours.StartHour * 60
	end := hours.EndHour * 60
	step := effective.DurationMinutes

	slots := make([]domain.TimeSlot, 0, (end-start+step-1)/step)
	for current := start; current < end; current += step {
		slots = append(slots, domain.TimeSlot{
			StartHour: minutesToHours(current),
			EndHour:   minutesToHours(current + step),
		})
	}

	return slots
}

func minutesToHours(minutes int) float64 {
	return float64(minutes) / 60
}
