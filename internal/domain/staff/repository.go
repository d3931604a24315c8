package staff

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("staff member not found")

type Repository interface {
	Create(ctx context.Context, m Member) error
	Update(ctx context.Context, m Member) error
	GetByID(ctx context.Context, id string) (Member, error)
	// List ordena por nombre.
	List(ctx context.Context, filter ListFilter) ([]Member, error)
}

type ListFilter struct {
	Role       Role
	ActiveOnly bool
}

func (f ListFilter) Match(m Member) bool {
	if f.Role != "" && m.Role != f.Role {
		return false
	}
	if f.ActiveOnly && !m.Active {
		return false
	}
	return true
}
