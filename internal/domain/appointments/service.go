package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

// Lookup lo implementan animals.Service y staff.Service.
type Lookup interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type Service struct {
	repo    Repository
	animals Lookup
	staff   Lookup
	now     func() time.Time
}

func NewService(repo Repository, animals, staff Lookup) *Service {
	return &Service{
		repo:    repo,
		animals: animals,
		staff:   staff,
		now:     time.Now,
	}
}

type CreateInput struct {
	At        time.Time
	Location  string
	AnimalIDs []string
	StaffIDs  []string
	Notes     string
}

// Create registra la cita. Los ids de animales/personal inexistentes se descartan sin error.
func (s *Service) Create(ctx context.Context, in CreateInput) (Appointment, error) {
	if in.At.IsZero() {
		return Appointment{}, fmt.Errorf("%w: date required", ErrInvalidInput)
	}
	location := strings.TrimSpace(in.Location)
	if location == "" {
		location = DefaultLocation
	}

	animalIDs, err := existing(ctx, s.animals, in.AnimalIDs)
	if err != nil {
		return Appointment{}, err
	}
	staffIDs, err := existing(ctx, s.staff, in.StaffIDs)
	if err != nil {
		return Appointment{}, err
	}

	a := Appointment{
		ID:        uuid.NewString(),
		At:        in.At.UTC(),
		Location:  location,
		AnimalIDs: animalIDs,
		StaffIDs:  staffIDs,
		Notes:     strings.TrimSpace(in.Notes),
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Appointment{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Upcoming: citas desde ahora, la más próxima primero.
func (s *Service) Upcoming(ctx context.Context) ([]Appointment, error) {
	now := s.now()
	return s.repo.List(ctx, ListFilter{From: &now})
}

// Past: citas anteriores a ahora, la más reciente primero.
func (s *Service) Past(ctx context.Context) ([]Appointment, error) {
	now := s.now()
	items, err := s.repo.List(ctx, ListFilter{Before: &now})
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	return items, nil
}

// Calendar arma el feed entre from (inclusivo) y to (exclusivo).
func (s *Service) Calendar(ctx context.Context, from, to time.Time) ([]CalendarEntry, error) {
	if !to.IsZero() && !from.IsZero() && !to.After(from) {
		return nil, fmt.Errorf("%w: to must be after from", ErrInvalidInput)
	}

	var f ListFilter
	if !from.IsZero() {
		f.From = &from
	}
	if !to.IsZero() {
		f.Before = &to
	}
	items, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	out := make([]CalendarEntry, 0, len(items))
	for _, a := range items {
		out = append(out, CalendarEntry{ID: a.ID, Title: a.Location, Start: a.At})
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	a, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, a.ID)
}

func existing(ctx context.Context, lookup Lookup, ids []string) ([]string, error) {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		ok, err := lookup.Exists(ctx, id)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, id)
		}
	}
	return out, nil
}
