package tasks

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("task not found")

type Repository interface {
	Create(ctx context.Context, t Task) error
	Update(ctx context.Context, t Task) error
	GetByID(ctx context.Context, id string) (Task, error)
	// List ordena por título.
	List(ctx context.Context, activeOnly bool) ([]Task, error)
}
