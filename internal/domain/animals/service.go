package animals

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cat-shelter-admin/internal/platform/dates"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name        string
	Species     Species
	Sex         Sex
	BirthDate   *time.Time
	Microchip   string
	Status      Status
	EntryDate   *time.Time
	EntryReason string
	ExitDate    *time.Time
	ExitReason  string
	Notes       string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Animal, error) {
	name := DisplayName(in.Name)
	if name == "" {
		return Animal{}, fmt.Errorf("%w: name required", ErrInvalidInput)
	}

	status := in.Status
	if status == "" {
		status = StatusNormal
	}
	species := in.Species
	if species == "" {
		species = SpeciesCat
	}
	sex := in.Sex
	if sex == "" {
		sex = SexUnknown
	}

	now := s.now()
	a := Animal{
		ID:          uuid.NewString(),
		Name:        name,
		Species:     species,
		Sex:         sex,
		BirthDate:   dayPtr(in.BirthDate),
		Microchip:   strings.TrimSpace(in.Microchip),
		Status:      status,
		EntryDate:   dayPtr(in.EntryDate),
		EntryReason: strings.TrimSpace(in.EntryReason),
		ExitDate:    dayPtr(in.ExitDate),
		ExitReason:  strings.TrimSpace(in.ExitReason),
		Notes:       strings.TrimSpace(in.Notes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := validate(a); err != nil {
		return Animal{}, err
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Animal{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Animal, error) {
	filter.Query = strings.TrimSpace(filter.Query)
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, filter.Status)
	}
	return s.repo.List(ctx, filter)
}

// ListAll devuelve el snapshot completo (reportes, motor de recordatorios).
func (s *Service) ListAll(ctx context.Context) ([]Animal, error) {
	return s.repo.List(ctx, ListFilter{})
}

// DatePatch distingue "no enviado" de "enviado null" en un PATCH.
type DatePatch struct {
	Present bool
	Value   *time.Time
}

// UpdateInput: punteros nil = no tocar.
type UpdateInput struct {
	Name        *string
	Species     *Species
	Sex         *Sex
	Microchip   *string
	Status      *Status
	EntryReason *string
	ExitReason  *string
	Notes       *string

	BirthDate DatePatch
	EntryDate DatePatch
	ExitDate  DatePatch
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Animal, error) {
	a, err := s.GetByID(ctx, id)
	if err != nil {
		return Animal{}, err
	}

	if in.Name != nil {
		a.Name = DisplayName(*in.Name)
	}
	if in.Species != nil {
		a.Species = *in.Species
	}
	if in.Sex != nil {
		a.Sex = *in.Sex
	}
	if in.Microchip != nil {
		a.Microchip = strings.TrimSpace(*in.Microchip)
	}
	if in.Status != nil {
		a.Status = *in.Status
	}
	if in.EntryReason != nil {
		a.EntryReason = strings.TrimSpace(*in.EntryReason)
	}
	if in.ExitReason != nil {
		a.ExitReason = strings.TrimSpace(*in.ExitReason)
	}
	if in.Notes != nil {
		a.Notes = strings.TrimSpace(*in.Notes)
	}
	if in.BirthDate.Present {
		a.BirthDate = dayPtr(in.BirthDate.Value)
	}
	if in.EntryDate.Present {
		a.EntryDate = dayPtr(in.EntryDate.Value)
	}
	if in.ExitDate.Present {
		a.ExitDate = dayPtr(in.ExitDate.Value)
	}

	if err := validate(a); err != nil {
		return Animal{}, err
	}

	a.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

// Exists cumple con los puertos "AnimalLookup" de otros módulos (care, notes, appointments).
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func validate(a Animal) error {
	if a.Name == "" {
		return fmt.Errorf("%w: name required", ErrInvalidInput)
	}
	if !a.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, a.Status)
	}
	switch a.Species {
	case SpeciesCat, SpeciesDog, SpeciesOther:
	default:
		return fmt.Errorf("%w: unknown species %q", ErrInvalidInput, a.Species)
	}
	switch a.Sex {
	case SexMale, SexFemale, SexUnknown:
	default:
		return fmt.Errorf("%w: unknown sex %q", ErrInvalidInput, a.Sex)
	}
	if a.EntryDate != nil && a.ExitDate != nil && a.ExitDate.Before(*a.EntryDate) {
		return fmt.Errorf("%w: exit_date before entry_date", ErrInvalidInput)
	}
	return nil
}

func dayPtr(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	return dates.Ptr(*t)
}
