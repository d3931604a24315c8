package careplan

import (
	"context"
	"fmt"
	"time"

	"cat-shelter-admin/internal/domain/animals"
	"cat-shelter-admin/internal/domain/care"
	"cat-shelter-admin/internal/platform/metrics"
)

// Service carga el snapshot (animales + eventos + catálogo) y llama al motor puro.
type Service struct {
	animals animals.Repository
	events  care.Repository
	types   care.TypeRepository
	now     func() time.Time
}

func NewService(animalRepo animals.Repository, events care.Repository, types care.TypeRepository) *Service {
	return &Service{
		animals: animalRepo,
		events:  events,
		types:   types,
		now:     time.Now,
	}
}

// DueReminders calcula los recalls de un kind tipado (vacuna o desparasitación).
// Para ambas familias a la vez está Counters, con un horizonte por familia.
func (s *Service) DueReminders(ctx context.Context, kind care.Kind, horizonDays int) ([]DueItem, error) {
	if !kind.Typed() {
		return nil, fmt.Errorf("%w: reminders only for vaccination or deworming", care.ErrInvalidInput)
	}

	all, err := s.animals.List(ctx, animals.ListFilter{ResidentOnly: true})
	if err != nil {
		return nil, err
	}

	out, err := s.dueFor(ctx, all, kind, s.now(), horizonDays)
	if err != nil {
		return nil, err
	}
	SortDue(out)
	return out, nil
}

// Counters arma los contadores del dashboard con un horizonte por familia.
func (s *Service) Counters(ctx context.Context, h Horizons) ([]KindCounter, error) {
	all, err := s.animals.List(ctx, animals.ListFilter{ResidentOnly: true})
	if err != nil {
		return nil, err
	}
	types, err := s.types.ListTypes(ctx)
	if err != nil {
		return nil, err
	}

	ref := s.now()
	vacc, err := s.dueFor(ctx, all, care.KindVaccination, ref, h.Vaccination)
	if err != nil {
		return nil, err
	}
	dew, err := s.dueFor(ctx, all, care.KindDeworming, ref, h.Deworming)
	if err != nil {
		return nil, err
	}

	return Summarize(append(vacc, dew...), care.NewCatalog(types)), nil
}

// Catalog expone el catálogo actual para etiquetar respuestas.
func (s *Service) Catalog(ctx context.Context) (care.Catalog, error) {
	types, err := s.types.ListTypes(ctx)
	if err != nil {
		return care.Catalog{}, err
	}
	return care.NewCatalog(types), nil
}

func (s *Service) dueFor(ctx context.Context, all []animals.Animal, kind care.Kind, ref time.Time, horizon int) ([]DueItem, error) {
	events, err := s.events.ListByKind(ctx, kind)
	if err != nil {
		return nil, err
	}
	items, err := ComputeDue(all, events, ref, horizon)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		metrics.RemindersComputed.WithLabelValues(string(it.Kind), string(it.Status)).Inc()
	}
	return items, nil
}
