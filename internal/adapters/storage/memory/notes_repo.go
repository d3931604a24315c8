package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"cat-shelter-admin/internal/domain/animals"
	"cat-shelter-admin/internal/domain/notes"
)

type noteRepo struct {
	mu    sync.RWMutex
	items []notes.Note
}

func NewNoteRepo() notes.Repository {
	return &noteRepo{}
}

func (r *noteRepo) Create(ctx context.Context, n notes.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n.ID == "" {
		return errors.New("note id required")
	}
	r.items = append(r.items, n)
	return nil
}

func (r *noteRepo) ListByAnimal(ctx context.Context, animalID string) ([]notes.Note, error) {
	return r.filter(func(n notes.Note) bool { return n.AnimalID == animalID }), nil
}

func (r *noteRepo) Search(ctx context.Context, query string) ([]notes.Note, error) {
	return r.filter(func(n notes.Note) bool {
		return query == "" || animals.ContainsFold(n.Content, query)
	}), nil
}

func (r *noteRepo) filter(keep func(notes.Note) bool) []notes.Note {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]notes.Note, 0)
	// recorrido inverso: a igual created_at, la última insertada primero
	for i := len(r.items) - 1; i >= 0; i-- {
		if keep(r.items[i]) {
			out = append(out, r.items[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
