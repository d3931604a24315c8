package staff

import (
	"context"
	"errors"
	"sort"
	"testing"
)

type testRepo struct {
	byID map[string]Member
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Member{}}
}

func (r *testRepo) Create(ctx context.Context, m Member) error {
	r.byID[m.ID] = m
	return nil
}

func (r *testRepo) Update(ctx context.Context, m Member) error {
	if _, ok := r.byID[m.ID]; !ok {
		return ErrNotFound
	}
	r.byID[m.ID] = m
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Member, error) {
	m, ok := r.byID[id]
	if !ok {
		return Member{}, ErrNotFound
	}
	return m, nil
}

func (r *testRepo) List(ctx context.Context, f ListFilter) ([]Member, error) {
	out := make([]Member, 0)
	for _, m := range r.byID {
		if f.Match(m) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func TestService_Create_Validation(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateInput{Name: " "}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty name, got %v", err)
	}
	if _, err := svc.Create(ctx, CreateInput{Name: "Eve", Role: "boss"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown role, got %v", err)
	}
	if _, err := svc.Create(ctx, CreateInput{Name: "Eve", Email: "nope"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad email, got %v", err)
	}

	m, err := svc.Create(ctx, CreateInput{Name: "Dr  Martin", Role: RoleVeterinarian, Email: "martin@example.org"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if m.Name != "Dr Martin" || !m.Active {
		t.Fatalf("unexpected member: %+v", m)
	}
}

func TestService_DeactivateAndList(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	n, err := svc.SeedDefaults(ctx)
	if err != nil || n != 2 {
		t.Fatalf("SeedDefaults = %d, %v", n, err)
	}
	if n, _ := svc.SeedDefaults(ctx); n != 0 {
		t.Fatalf("second seed should be a no-op, created %d", n)
	}

	all, _ := svc.List(ctx, ListFilter{})
	if len(all) != 2 || all[0].Name != "Alice" {
		t.Fatalf("unexpected staff: %+v", all)
	}

	if _, err := svc.Deactivate(ctx, all[0].ID); err != nil {
		t.Fatalf("Deactivate returned error: %v", err)
	}
	active, _ := svc.List(ctx, ListFilter{ActiveOnly: true})
	if len(active) != 1 || active[0].Name != "Bob" {
		t.Fatalf("expected only Bob active, got %+v", active)
	}

	// el miembro dado de baja sigue existiendo
	ok, err := svc.Exists(ctx, all[0].ID)
	if err != nil || !ok {
		t.Fatalf("deactivated member should still exist")
	}
	if _, err := svc.Deactivate(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
