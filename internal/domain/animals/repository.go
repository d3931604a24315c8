package animals

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("animal not found")

type Repository interface {
	Create(ctx context.Context, a Animal) error
	Update(ctx context.Context, a Animal) error
	GetByID(ctx context.Context, id string) (Animal, error)
	List(ctx context.Context, filter ListFilter) ([]Animal, error)
}

// ListFilter: todos los campos son opcionales. Orden por nombre.
type ListFilter struct {
	Query        string // substring del nombre, case-insensitive
	Status       Status
	Species      Species
	ResidentOnly bool
}

// Match aplica el filtro en memoria (repos in-memory y post-filtro de ResidentOnly en SQL).
func (f ListFilter) Match(a Animal) bool {
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	if f.Species != "" && a.Species != f.Species {
		return false
	}
	if f.ResidentOnly && !a.IsResident() {
		return false
	}
	if f.Query != "" && !ContainsFold(a.Name, f.Query) {
		return false
	}
	return true
}
