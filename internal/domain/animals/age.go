package animals

import (
	"fmt"
	"time"
)

// AgeText devuelve la edad legible usada en las fichas: "2 ans, 3 mois" o "5 mois".
func AgeText(birth *time.Time, today time.Time) string {
	if birth == nil || birth.IsZero() {
		return "—"
	}
	b := *birth

	years := today.Year() - b.Year()
	if today.Month() < b.Month() || (today.Month() == b.Month() && today.Day() < b.Day()) {
		years--
	}

	months := (today.Year()-b.Year())*12 + int(today.Month()) - int(b.Month())
	if today.Day() < b.Day() {
		months--
	}
	rem := months - years*12

	if years <= 0 {
		return fmt.Sprintf("%d mois", rem)
	}
	return fmt.Sprintf("%d ans, %d mois", years, rem)
}
