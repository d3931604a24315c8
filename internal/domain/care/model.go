package care

import "time"

// Kind es la familia de cuidado registrada.
type Kind string

const (
	KindVaccination Kind = "vaccination"
	KindDeworming   Kind = "deworming"
	KindWeight      Kind = "weight"
)

func (k Kind) Valid() bool {
	switch k {
	case KindVaccination, KindDeworming, KindWeight:
		return true
	}
	return false
}

// Typed: vacunas y desparasitaciones referencian un CareType del catálogo.
func (k Kind) Typed() bool {
	return k == KindVaccination || k == KindDeworming
}

// Event es un registro de cuidado (vacuna, desparasitación o pesaje). Append-only salvo borrado manual.
type Event struct {
	ID       string
	AnimalID string

	Kind   Kind
	TypeID string // vacuna / antiparasitario; vacío para pesajes

	Date   time.Time // día de calendario (UTC)
	Primer bool      // primo-vacunación: recall corto
	Value  float64   // kg, solo pesajes

	Lot          string
	Veterinarian string
	Reaction     string
	Notes        string

	RecordedAt time.Time
}

// CareType es una entrada del catálogo (vacuna o antiparasitario).
type CareType struct {
	ID     string
	Kind   Kind
	Name   string
	Active bool
}
