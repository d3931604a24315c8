package careplan

import (
	"time"

	"cat-shelter-admin/internal/domain/animals"
	"cat-shelter-admin/internal/platform/dates"
)

type EntryCounts struct {
	Abandonment int `json:"abandonment"`
	Returned    int `json:"returned"`
	Found       int `json:"found"`
}

func (c EntryCounts) Total() int {
	return c.Abandonment + c.Returned + c.Found
}

type ExitCounts struct {
	Placed      int `json:"placed"`
	Owner       int `json:"owner"`
	Deceased    int `json:"deceased"`
	Escaped     int `json:"escaped"`
	Transferred int `json:"transferred"`
}

func (c ExitCounts) Total() int {
	return c.Placed + c.Owner + c.Deceased + c.Escaped + c.Transferred
}

// Uncategorized es un movimiento del mes cuyo motivo no coincide con ninguna categoría.
type Uncategorized struct {
	AnimalID string    `json:"animal_id"`
	Name     string    `json:"name"`
	Date     time.Time `json:"date"`
	Reason   string    `json:"reason"`
}

// MonthStats es el informe de actividad de un mes. CountEnd se deriva
// (CountStart + EntriesTotal - ExitsTotal), no se recalcula desde el censo.
type MonthStats struct {
	Year  int
	Month time.Month
	Start time.Time
	End   time.Time

	CountStart   int
	Entries      EntryCounts
	EntriesTotal int
	Exits        ExitCounts
	ExitsTotal   int
	CountEnd     int

	// Los motivos sin categoría no suman en los totales.
	UncategorizedEntries []Uncategorized
	UncategorizedExits   []Uncategorized

	// Ajuste externo de otras especies; solo afecta a los totales mostrados.
	OtherSpecies int
}

// WithOtherSpecies devuelve una copia con el ajuste de especies no felinas.
func (s MonthStats) WithOtherSpecies(n int) MonthStats {
	s.OtherSpecies = n
	return s
}

func (s MonthStats) DisplayStart() int { return s.CountStart + s.OtherSpecies }
func (s MonthStats) DisplayEnd() int   { return s.CountEnd + s.OtherSpecies }

// ComputeMonthStats calcula entradas/salidas del mes [inicio, último día].
func ComputeMonthStats(all []animals.Animal, year int, month int) (MonthStats, error) {
	if month < 1 || month > 12 {
		return MonthStats{}, ErrInvalidMonth
	}
	start, end := dates.MonthBounds(year, time.Month(month))

	st := MonthStats{
		Year:                 year,
		Month:                time.Month(month),
		Start:                start,
		End:                  end,
		UncategorizedEntries: []Uncategorized{},
		UncategorizedExits:   []Uncategorized{},
	}

	for _, a := range all {
		entry := dayOrNil(a.EntryDate)
		exit := dayOrNil(a.ExitDate)

		if entry != nil && entry.Before(start) && (exit == nil || !exit.Before(start)) {
			st.CountStart++
		}

		if entry != nil && within(*entry, start, end) {
			cat, ok := ClassifyEntryReason(a.EntryReason)
			if !ok {
				st.UncategorizedEntries = append(st.UncategorizedEntries, Uncategorized{
					AnimalID: a.ID, Name: a.Name, Date: *entry, Reason: a.EntryReason,
				})
			}
			switch cat {
			case EntryAbandonment:
				st.Entries.Abandonment++
			case EntryReturned:
				st.Entries.Returned++
			case EntryFound:
				st.Entries.Found++
			}
		}

		if exit != nil && within(*exit, start, end) {
			cat, ok := ClassifyExitReason(a.ExitReason)
			if !ok {
				st.UncategorizedExits = append(st.UncategorizedExits, Uncategorized{
					AnimalID: a.ID, Name: a.Name, Date: *exit, Reason: a.ExitReason,
				})
			}
			switch cat {
			case ExitPlaced:
				st.Exits.Placed++
			case ExitOwner:
				st.Exits.Owner++
			case ExitDeceased:
				st.Exits.Deceased++
			case ExitEscaped:
				st.Exits.Escaped++
			case ExitTransferred:
				st.Exits.Transferred++
			}
		}
	}

	st.EntriesTotal = st.Entries.Total()
	st.ExitsTotal = st.Exits.Total()
	st.CountEnd = st.CountStart + st.EntriesTotal - st.ExitsTotal
	return st, nil
}

func within(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}

func dayOrNil(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	return dates.Ptr(*t)
}
