package notes

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("note not found")

type Repository interface {
	Create(ctx context.Context, n Note) error
	// ListByAnimal: más reciente primero.
	ListByAnimal(ctx context.Context, animalID string) ([]Note, error)
	// Search: substring case-insensitive en el contenido; query vacía = todas. Más reciente primero.
	Search(ctx context.Context, query string) ([]Note, error)
}
