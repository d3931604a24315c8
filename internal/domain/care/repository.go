package care

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("care event not found")
	ErrTypeNotFound = errors.New("care type not found")
	ErrDuplicate    = errors.New("care type already exists")
)

// Repository guarda los eventos de cuidado. El historial de un animal se lee
// siempre con HistoryFor.
type Repository interface {
	Create(ctx context.Context, e Event) error
	GetByID(ctx context.Context, id string) (Event, error)
	Delete(ctx context.Context, id string) error

	// HistoryFor: eventos de un animal y kind, orden (date asc, recorded_at asc).
	HistoryFor(ctx context.Context, animalID string, kind Kind) ([]Event, error)
	// ListByKind: snapshot de todos los animales, mismo orden.
	ListByKind(ctx context.Context, kind Kind) ([]Event, error)
}

type TypeRepository interface {
	CreateType(ctx context.Context, t CareType) error
	UpdateType(ctx context.Context, t CareType) error
	GetType(ctx context.Context, id string) (CareType, error)
	ListTypes(ctx context.Context) ([]CareType, error)
}
