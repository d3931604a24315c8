package sqlstore

import (
	"context"

	"cat-shelter-admin/internal/domain/animals"
	"cat-shelter-admin/internal/domain/notes"
)

type NotesRepo struct {
	s *Store
}

func (s *Store) Notes() *NotesRepo { return &NotesRepo{s: s} }

func (r *NotesRepo) Create(ctx context.Context, n notes.Note) error {
	_, err := r.s.exec(ctx, `
		INSERT INTO notes (id, animal_id, content, created_at) VALUES ($1,$2,$3,$4)
	`, n.ID, n.AnimalID, n.Content, n.CreatedAt.UTC())
	return err
}

func (r *NotesRepo) ListByAnimal(ctx context.Context, animalID string) ([]notes.Note, error) {
	return r.list(ctx, "", `
		SELECT id, animal_id, content, created_at
		FROM notes
		WHERE animal_id = $1
		ORDER BY created_at DESC, id DESC
	`, animalID)
}

// Search: igual que animales, el texto se compara en Go (plegado Unicode).
func (r *NotesRepo) Search(ctx context.Context, query string) ([]notes.Note, error) {
	return r.list(ctx, query, `
		SELECT id, animal_id, content, created_at
		FROM notes
		ORDER BY created_at DESC, id DESC
	`)
}

func (r *NotesRepo) list(ctx context.Context, text string, q string, args ...any) ([]notes.Note, error) {
	rows, err := r.s.query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]notes.Note, 0)
	for rows.Next() {
		var n notes.Note
		if err := rows.Scan(&n.ID, &n.AnimalID, &n.Content, &n.CreatedAt); err != nil {
			return nil, err
		}
		if !animals.ContainsFold(n.Content, text) {
			continue
		}
		n.CreatedAt = n.CreatedAt.UTC()
		out = append(out, n)
	}
	return out, rows.Err()
}
