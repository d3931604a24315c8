package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"cat-shelter-admin/internal/domain/staff"
)

type staffRepo struct {
	mu   sync.RWMutex
	byID map[string]staff.Member
}

func NewStaffRepo() staff.Repository {
	return &staffRepo{
		byID: make(map[string]staff.Member),
	}
}

func (r *staffRepo) Create(ctx context.Context, m staff.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m.ID == "" {
		return errors.New("staff id required")
	}
	if _, exists := r.byID[m.ID]; exists {
		return errors.New("staff member already exists")
	}
	r.byID[m.ID] = m
	return nil
}

func (r *staffRepo) Update(ctx context.Context, m staff.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[m.ID]; !exists {
		return staff.ErrNotFound
	}
	r.byID[m.ID] = m
	return nil
}

func (r *staffRepo) GetByID(ctx context.Context, id string) (staff.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	if !ok {
		return staff.Member{}, staff.ErrNotFound
	}
	return m, nil
}

func (r *staffRepo) List(ctx context.Context, filter staff.ListFilter) ([]staff.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]staff.Member, 0)
	for _, m := range r.byID {
		if filter.Match(m) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
