package types

import (
	"fmt"
	"math"
	"time"
)

// TimeString время суток в формате "HH:MM"
type TimeString string

// NewTimeString создает TimeString из time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromHours создает TimeString из дробного часа (10.5 -> "10:30").
// Значения за пределами суток не сворачиваются: 24.25 -> "24:15"
func NewTimeStringFromHours(hours float64) TimeString {
	total := int(math.Round(hours * 60))
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60))
}

// NewTimeStringFromString разбирает строку формата "HH:MM"
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет формат "HH:MM"
func (t TimeString) Validate() error {
	if _, err := time.Parse("15:04", string(t)); err != nil {
		return fmt.Errorf("invalid time format %q, expected HH:MM", string(t))
	}
	return nil
}

// Minutes возвращает количество минут от начала суток
func (t TimeString) Minutes() (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(string(t), "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time format %q, expected HH:MM", string(t))
	}
	return h*60 + m, nil
}

// IsZero проверяет, что время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}
