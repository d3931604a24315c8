package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"cat-shelter-admin/internal/domain/care"
)

// CareRepo implementa care.Repository y care.TypeRepository.
type CareRepo struct {
	mu    sync.RWMutex
	byID  map[string]care.Event
	seq   map[string]int // orden de inserción, desempate estable
	next  int
	types map[string]care.CareType
}

func NewCareRepo() *CareRepo {
	return &CareRepo{
		byID:  make(map[string]care.Event),
		seq:   make(map[string]int),
		types: make(map[string]care.CareType),
	}
}

func (r *CareRepo) Create(ctx context.Context, e care.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(e.ID) == "" {
		return errors.New("care event id required")
	}
	if _, exists := r.byID[e.ID]; exists {
		return errors.New("care event already exists")
	}
	r.byID[e.ID] = e
	r.next++
	r.seq[e.ID] = r.next
	return nil
}

func (r *CareRepo) GetByID(ctx context.Context, id string) (care.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return care.Event{}, care.ErrNotFound
	}
	return e, nil
}

func (r *CareRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return care.ErrNotFound
	}
	delete(r.byID, id)
	delete(r.seq, id)
	return nil
}

func (r *CareRepo) HistoryFor(ctx context.Context, animalID string, kind care.Kind) ([]care.Event, error) {
	return r.collect(func(e care.Event) bool {
		return e.AnimalID == animalID && e.Kind == kind
	}), nil
}

func (r *CareRepo) ListByKind(ctx context.Context, kind care.Kind) ([]care.Event, error) {
	return r.collect(func(e care.Event) bool { return e.Kind == kind }), nil
}

func (r *CareRepo) collect(keep func(care.Event) bool) []care.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]care.Event, 0)
	for _, e := range r.byID {
		if keep(e) {
			out = append(out, e)
		}
	}

	// date asc, recorded_at asc, inserción asc
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if !a.RecordedAt.Equal(b.RecordedAt) {
			return a.RecordedAt.Before(b.RecordedAt)
		}
		return r.seq[a.ID] < r.seq[b.ID]
	})
	return out
}

// -------------------------
// Catálogo
// -------------------------

func (r *CareRepo) CreateType(ctx context.Context, t care.CareType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(t.ID) == "" {
		return errors.New("care type id required")
	}
	for _, existing := range r.types {
		if existing.Kind == t.Kind && strings.EqualFold(existing.Name, t.Name) {
			return care.ErrDuplicate
		}
	}
	r.types[t.ID] = t
	return nil
}

func (r *CareRepo) UpdateType(ctx context.Context, t care.CareType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.types[t.ID]; !ok {
		return care.ErrTypeNotFound
	}
	r.types[t.ID] = t
	return nil
}

func (r *CareRepo) GetType(ctx context.Context, id string) (care.CareType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.types[id]
	if !ok {
		return care.CareType{}, care.ErrTypeNotFound
	}
	return t, nil
}

func (r *CareRepo) ListTypes(ctx context.Context) ([]care.CareType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]care.CareType, 0, len(r.types))
	for _, t := range r.types {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
