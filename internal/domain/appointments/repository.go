package appointments

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("appointment not found")

type Repository interface {
	Create(ctx context.Context, a Appointment) error
	GetByID(ctx context.Context, id string) (Appointment, error)
	Delete(ctx context.Context, id string) error
	// List devuelve citas ordenadas por fecha asc.
	List(ctx context.Context, filter ListFilter) ([]Appointment, error)
}

// ListFilter: From inclusivo, Before exclusivo; nil = sin límite.
type ListFilter struct {
	From   *time.Time
	Before *time.Time
}

func (f ListFilter) Match(a Appointment) bool {
	if f.From != nil && a.At.Before(*f.From) {
		return false
	}
	if f.Before != nil && !a.At.Before(*f.Before) {
		return false
	}
	return true
}
