// Package dates agrupa helpers de fechas "de calendario" (sin hora), en UTC.
package dates

import (
	"strings"
	"time"
)

// Layout es el formato de fecha usado en la API (YYYY-MM-DD).
const Layout = "2006-01-02"

// Day trunca t a medianoche UTC conservando el día de calendario de t.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Parse lee YYYY-MM-DD.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}

// ParseOptional devuelve nil para string vacío.
func ParseOptional(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// DaysBetween cuenta días de calendario de a hasta b (negativo si b < a).
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}

// MonthBounds devuelve el primer y último día (inclusive) del mes.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// Ptr copia t a un puntero, normalizado a día.
func Ptr(t time.Time) *time.Time {
	d := Day(t)
	return &d
}
