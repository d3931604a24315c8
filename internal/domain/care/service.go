package care

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"cat-shelter-admin/internal/platform/dates"
	"cat-shelter-admin/internal/platform/metrics"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrAnimalNotFound  = errors.New("animal not found")
	ErrInactiveType    = errors.New("care type is not active")
	ErrTypeKindInvalid = errors.New("care type does not match kind")
)

// AnimalLookup evita importar el paquete animals (lo implementa animals.Service).
type AnimalLookup interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type Service struct {
	repo    Repository
	types   TypeRepository
	animals AnimalLookup
	now     func() time.Time
}

func NewService(repo Repository, types TypeRepository, animals AnimalLookup) *Service {
	return &Service{
		repo:    repo,
		types:   types,
		animals: animals,
		now:     time.Now,
	}
}

type RecordInput struct {
	Kind         Kind
	TypeID       string
	Date         time.Time // zero => hoy
	Primer       bool
	Value        float64
	Lot          string
	Veterinarian string
	Reaction     string
	Notes        string
}

func (s *Service) Record(ctx context.Context, animalID string, in RecordInput) (Event, error) {
	animalID = strings.TrimSpace(animalID)
	if animalID == "" {
		return Event{}, ErrAnimalNotFound
	}
	if !in.Kind.Valid() {
		return Event{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidInput, in.Kind)
	}

	ok, err := s.animals.Exists(ctx, animalID)
	if err != nil {
		return Event{}, err
	}
	if !ok {
		return Event{}, ErrAnimalNotFound
	}

	typeID := strings.TrimSpace(in.TypeID)
	switch in.Kind {
	case KindWeight:
		if in.Value <= 0 {
			return Event{}, fmt.Errorf("%w: weight value must be > 0", ErrInvalidInput)
		}
		if typeID != "" {
			return Event{}, fmt.Errorf("%w: weight events have no type", ErrInvalidInput)
		}
	default:
		if typeID == "" {
			return Event{}, fmt.Errorf("%w: type_id required", ErrInvalidInput)
		}
		t, err := s.types.GetType(ctx, typeID)
		if err != nil {
			return Event{}, err
		}
		if t.Kind != in.Kind {
			return Event{}, ErrTypeKindInvalid
		}
		// Solo los tipos activos se ofrecen para registros nuevos.
		if !t.Active {
			return Event{}, ErrInactiveType
		}
	}
	if in.Primer && in.Kind != KindVaccination {
		return Event{}, fmt.Errorf("%w: primer only applies to vaccinations", ErrInvalidInput)
	}

	now := s.now()
	date := in.Date
	if date.IsZero() {
		date = now
	}

	e := Event{
		ID:           uuid.NewString(),
		AnimalID:     animalID,
		Kind:         in.Kind,
		TypeID:       typeID,
		Date:         dates.Day(date),
		Primer:       in.Primer,
		Value:        in.Value,
		Lot:          strings.TrimSpace(in.Lot),
		Veterinarian: strings.TrimSpace(in.Veterinarian),
		Reaction:     strings.TrimSpace(in.Reaction),
		Notes:        strings.TrimSpace(in.Notes),
		RecordedAt:   now,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return Event{}, err
	}
	metrics.CareEventsRecorded.WithLabelValues(string(e.Kind)).Inc()
	return e, nil
}

// History devuelve el historial de un animal; kind vacío = todos. Orden: más reciente primero.
func (s *Service) History(ctx context.Context, animalID string, kind Kind) ([]Event, error) {
	kinds := []Kind{kind}
	if kind == "" {
		kinds = []Kind{KindVaccination, KindDeworming, KindWeight}
	} else if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidInput, kind)
	}

	out := make([]Event, 0)
	for _, k := range kinds {
		items, err := s.repo.HistoryFor(ctx, animalID, k)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].RecordedAt.After(out[j].RecordedAt)
	})
	return out, nil
}

// Snapshot: todos los eventos de un kind (entrada del motor de recordatorios).
func (s *Service) Snapshot(ctx context.Context, kind Kind) ([]Event, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidInput, kind)
	}
	return s.repo.ListByKind(ctx, kind)
}

// Delete borra un evento del animal indicado (corrección manual del personal).
func (s *Service) Delete(ctx context.Context, animalID, eventID string) error {
	e, err := s.repo.GetByID(ctx, strings.TrimSpace(eventID))
	if err != nil {
		return err
	}
	if e.AnimalID != animalID {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, e.ID)
}

// -------------------------
// Catálogo
// -------------------------

func (s *Service) Catalog(ctx context.Context) (Catalog, error) {
	types, err := s.types.ListTypes(ctx)
	if err != nil {
		return Catalog{}, err
	}
	return NewCatalog(types), nil
}

func (s *Service) CreateType(ctx context.Context, kind Kind, name string) (CareType, error) {
	name = strings.Join(strings.Fields(name), " ")
	if !kind.Typed() {
		return CareType{}, fmt.Errorf("%w: kind must be vaccination or deworming", ErrInvalidInput)
	}
	if name == "" {
		return CareType{}, fmt.Errorf("%w: name required", ErrInvalidInput)
	}

	cat, err := s.Catalog(ctx)
	if err != nil {
		return CareType{}, err
	}
	for _, t := range cat.All(kind) {
		if strings.EqualFold(t.Name, name) {
			return CareType{}, ErrDuplicate
		}
	}

	t := CareType{
		ID:     uuid.NewString(),
		Kind:   kind,
		Name:   name,
		Active: true,
	}
	if err := s.types.CreateType(ctx, t); err != nil {
		return CareType{}, err
	}
	return t, nil
}

// SetTypeActive activa/desactiva un tipo. Los eventos históricos no se tocan.
func (s *Service) SetTypeActive(ctx context.Context, id string, active bool) (CareType, error) {
	t, err := s.types.GetType(ctx, strings.TrimSpace(id))
	if err != nil {
		return CareType{}, err
	}
	if t.Active == active {
		return t, nil
	}
	t.Active = active
	if err := s.types.UpdateType(ctx, t); err != nil {
		return CareType{}, err
	}
	return t, nil
}

// SeedCatalog crea los tipos del seed que todavía no existen. Idempotente.
func (s *Service) SeedCatalog(ctx context.Context, seed Seed) (int, error) {
	cat, err := s.Catalog(ctx)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, kind := range []Kind{KindVaccination, KindDeworming} {
		existing := map[string]struct{}{}
		for _, t := range cat.All(kind) {
			existing[strings.ToLower(t.Name)] = struct{}{}
		}
		for _, name := range seed.entries()[kind] {
			if _, ok := existing[strings.ToLower(strings.TrimSpace(name))]; ok {
				continue
			}
			if _, err := s.CreateType(ctx, kind, name); err != nil {
				return created, fmt.Errorf("seed %s %q: %w", kind, name, err)
			}
			existing[strings.ToLower(strings.TrimSpace(name))] = struct{}{}
			created++
		}
	}
	return created, nil
}
