package availability

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Droply-AvailabilityService/internal/domain"
)

func TestGenerateSlots_DefaultDay(t *testing.T) {
	slots := GenerateSlots(domain.EffectiveDayRules{
		WorkingHours:    domain.WorkingHours{StartHour: 9, EndHour: 17},
		DurationMinutes: 30,
	})

	require.Len(t, slots, 16)
	assert.Equal(t, domain.TimeSlot{StartHour: 9, EndHour: 9.5}, slots[0])
	assert.Equal(t, domain.TimeSlot{StartHour: 16.5, EndHour: 17}, slots[15])
}

func TestGenerateSlots_CountAndContiguity(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		end      int
		duration int
	}{
		{"half hours", 9, 17, 30},
		{"hours", 10, 12, 60},
		{"twenty minutes", 9, 10, 20},
		{"forty five minutes", 9, 17, 45},
		{"odd duration", 8, 11, 7},
		{"whole day", 0, 23, 60},
		{"longer than window", 9, 10, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := GenerateSlots(domain.EffectiveDayRules{
				WorkingHours:    domain.WorkingHours{StartHour: tt.start, EndHour: tt.end},
				DurationMinutes: tt.duration,
			})

			expected := int(math.Ceil(float64((tt.end-tt.start)*60) / float64(tt.duration)))
			require.Len(t, slots, expected)
			assert.Equal(t, float64(tt.start), slots[0].StartHour)

			for i, slot := range slots {
				assert.InDelta(t, float64(tt.duration)/60, slot.EndHour-slot.StartHour, 1e-9)
				assert.Equal(t, tt.duration, slot.DurationMinutes())
				if i > 0 {
					assert.InDelta(t, slots[i-1].EndHour, slot.StartHour, 1e-9)
				}
			}
		})
	}
}

func TestGenerateSlots_LastSlotIsNotClamped(t *testing.T) {
	slots := GenerateSlots(domain.EffectiveDayRules{
		WorkingHours:    domain.WorkingHours{StartHour: 9, EndHour: 17},
		DurationMinutes: 45,
	})

	require.Len(t, slots, 11)
	last := slots[len(slots)-1]
	assert.Equal(t, 16.5, last.StartHour)
	assert.Equal(t, 17.25, last.EndHour)
	assert.True(t, last.EndsAfter(17))
}

func TestGenerateSlots_LockedDayIsEmpty(t *testing.T) {
	slots := GenerateSlots(domain.EffectiveDayRules{
		WorkingHours:    domain.WorkingHours{StartHour: 9, EndHour: 17},
		DurationMinutes: 30,
		IsLocked:        true,
	})

	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestGenerateSlots_MalformedRulesAreEmpty(t *testing.T) {
	tests := []struct {
		name      string
		effective domain.EffectiveDayRules
	}{
		{"zero duration", domain.EffectiveDayRules{WorkingHours: domain.WorkingHours{StartHour: 9, EndHour: 17}}},
		{"negative duration", domain.EffectiveDayRules{WorkingHours: domain.WorkingHours{StartHour: 9, EndHour: 17}, DurationMinutes: -15}},
		{"inverted hours", domain.EffectiveDayRules{WorkingHours: domain.WorkingHours{StartHour: 17, EndHour: 9}, DurationMinutes: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, GenerateSlots(tt.effective))
		})
	}
}

func TestGenerateSlots_IsRepeatable(t *testing.T) {
	effective := domain.EffectiveDayRules{
		WorkingHours:    domain.WorkingHours{StartHour: 8, EndHour: 12},
		DurationMinutes: 25,
	}

	assert.Equal(t, GenerateSlots(effective), GenerateSlots(effective))
}
