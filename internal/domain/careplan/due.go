package careplan

import (
	"sort"
	"time"

	"cat-shelter-admin/internal/domain/animals"
	"cat-shelter-admin/internal/domain/care"
	"cat-shelter-admin/internal/platform/dates"
)

// IsResident aplica el filtro de residencia tal cual sobre los campos guardados.
func IsResident(a animals.Animal) bool {
	return a.IsResident()
}

// NextDue calcula el próximo recall de un evento. ok=false para kinds sin recall (pesajes).
func NextDue(e care.Event) (time.Time, bool) {
	last := dates.Day(e.Date)
	switch e.Kind {
	case care.KindVaccination:
		if e.Primer {
			return last.AddDate(0, 0, PrimerRecallDays), true
		}
		// Recall anual de calendario: 2024-01-01 -> 2025-01-01 aunque 2024 sea bisiesto.
		return last.AddDate(1, 0, 0), true
	case care.KindDeworming:
		return last.AddDate(0, 0, DewormingRecallDays), true
	}
	return time.Time{}, false
}

// Classify decide la urgencia de un vencimiento respecto de ref.
// ok=false si no está vencido ni dentro del horizonte.
func Classify(nextDue, ref time.Time, horizonDays int) (DueStatus, int, bool) {
	ref = dates.Day(ref)
	nextDue = dates.Day(nextDue)
	daysLeft := dates.DaysBetween(ref, nextDue)

	switch {
	case nextDue.Before(ref):
		return StatusLate, daysLeft, true
	case !nextDue.After(ref.AddDate(0, 0, horizonDays)):
		return StatusSoon, daysLeft, true
	}
	return "", daysLeft, false
}

type dueKey struct {
	animalID string
	kind     care.Kind
	typeID   string
}

// ComputeDue devuelve los recalls vencidos o próximos de los animales residentes.
// Solo se considera el último evento por (animal, kind[, vacuna]); en empate de
// fecha gana el que aparece después en events.
func ComputeDue(all []animals.Animal, events []care.Event, ref time.Time, horizonDays int) ([]DueItem, error) {
	if ref.IsZero() {
		return nil, ErrInvalidReference
	}
	if horizonDays < 0 {
		return nil, ErrInvalidHorizon
	}
	ref = dates.Day(ref)

	residents := make(map[string]animals.Animal, len(all))
	for _, a := range all {
		if IsResident(a) {
			residents[a.ID] = a
		}
	}

	latest := make(map[dueKey]care.Event)
	order := make([]dueKey, 0)
	for _, e := range events {
		if e.Date.IsZero() {
			continue
		}
		if _, ok := residents[e.AnimalID]; !ok {
			continue
		}

		k := dueKey{animalID: e.AnimalID, kind: e.Kind}
		switch e.Kind {
		case care.KindVaccination:
			k.typeID = e.TypeID
		case care.KindDeworming:
		default:
			continue
		}

		cur, seen := latest[k]
		if !seen {
			order = append(order, k)
		}
		if !seen || !dates.Day(e.Date).Before(dates.Day(cur.Date)) {
			latest[k] = e
		}
	}

	out := make([]DueItem, 0)
	for _, k := range order {
		e := latest[k]
		next, ok := NextDue(e)
		if !ok {
			continue
		}
		status, daysLeft, due := Classify(next, ref, horizonDays)
		if !due {
			continue
		}
		out = append(out, DueItem{
			AnimalID:   e.AnimalID,
			AnimalName: residents[e.AnimalID].Name,
			Kind:       e.Kind,
			TypeID:     k.typeID,
			LastDate:   dates.Day(e.Date),
			Primer:     e.Primer,
			NextDue:    next,
			DaysLeft:   daysLeft,
			Status:     status,
		})
	}

	SortDue(out)
	return out, nil
}

// SortDue: vencidos primero, luego por días restantes; desempate estable por nombre e id.
func SortDue(items []DueItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if (a.Status == StatusLate) != (b.Status == StatusLate) {
			return a.Status == StatusLate
		}
		if a.DaysLeft != b.DaysLeft {
			return a.DaysLeft < b.DaysLeft
		}
		if a.AnimalName != b.AnimalName {
			return a.AnimalName < b.AnimalName
		}
		if a.AnimalID != b.AnimalID {
			return a.AnimalID < b.AnimalID
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.TypeID < b.TypeID
	})
}
