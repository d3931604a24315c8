// Package reports genera el informe mensual de actividad del refugio.
package reports

import (
	"context"
	"errors"
	"fmt"

	"cat-shelter-admin/internal/domain/animals"
	"cat-shelter-admin/internal/domain/careplan"
	"cat-shelter-admin/internal/platform/metrics"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	animals animals.Repository
}

func NewService(animalRepo animals.Repository) *Service {
	return &Service{animals: animalRepo}
}

// ActivityReport calcula las estadísticas del mes sobre los felinos. otherSpecies
// es el ajuste externo de residentes no felinos (solo totales mostrados).
func (s *Service) ActivityReport(ctx context.Context, year, month, otherSpecies int) (careplan.MonthStats, error) {
	if year < 1900 || year > 9999 {
		return careplan.MonthStats{}, fmt.Errorf("%w: year out of range", ErrInvalidInput)
	}
	if otherSpecies < 0 {
		return careplan.MonthStats{}, fmt.Errorf("%w: other_species must be >= 0", ErrInvalidInput)
	}

	cats, err := s.animals.List(ctx, animals.ListFilter{Species: animals.SpeciesCat})
	if err != nil {
		return careplan.MonthStats{}, err
	}

	st, err := careplan.ComputeMonthStats(cats, year, month)
	if err != nil {
		return careplan.MonthStats{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	metrics.ActivityReportsGenerated.Inc()
	return st.WithOtherSpecies(otherSpecies), nil
}
