// Package careplan es el motor de reglas del refugio: recordatorios de
// vacunas/desparasitaciones y estadísticas mensuales de actividad.
// Las funciones de este paquete son puras; Service solo carga el snapshot.
package careplan

import (
	"errors"
	"time"

	"cat-shelter-admin/internal/domain/care"
)

var (
	ErrInvalidReference = errors.New("careplan: reference date required")
	ErrInvalidHorizon   = errors.New("careplan: horizon must be >= 0")
	ErrInvalidMonth     = errors.New("careplan: month must be in 1..12")
)

// Intervalos de recall.
const (
	PrimerRecallDays    = 30
	DewormingRecallDays = 60
)

type DueStatus string

const (
	StatusLate DueStatus = "late"
	StatusSoon DueStatus = "soon"
)

// DueItem es un recall vencido o próximo para un animal residente.
type DueItem struct {
	AnimalID   string
	AnimalName string

	Kind   care.Kind
	TypeID string // vacuna; vacío para desparasitación

	LastDate time.Time
	Primer   bool
	NextDue  time.Time
	DaysLeft int // negativo si está vencido
	Status   DueStatus
}

// KindCounter resume late/soon por tipo de vacuna o por desparasitación.
type KindCounter struct {
	Kind   care.Kind
	TypeID string
	Label  string
	Late   int
	Soon   int
}

// Horizons en días, por familia de cuidado.
type Horizons struct {
	Vaccination int
	Deworming   int
}
