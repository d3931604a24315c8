package careplan_test

import (
	"context"
	"testing"
	"time"

	"cat-shelter-admin/internal/adapters/storage/memory"
	"cat-shelter-admin/internal/domain/animals"
	"cat-shelter-admin/internal/domain/care"
	"cat-shelter-admin/internal/domain/careplan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// d and resident mirror the helpers in due_test.go, which live in the
// internal test package and are not visible here.
func d(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func resident(id, name string) animals.Animal {
	return animals.Animal{ID: id, Name: name, Status: animals.StatusNormal, Species: animals.SpeciesCat}
}

func newTestService(t *testing.T, ref string) *careplan.Service {
	t.Helper()
	ctx := context.Background()

	animalRepo := memory.NewAnimalRepo()
	careRepo := memory.NewCareRepo()
	require.NoError(t, animalRepo.Create(ctx, resident("a1", "Minou")))
	require.NoError(t, careRepo.Create(ctx, care.Event{ID: "e1", AnimalID: "a1", Kind: care.KindVaccination, TypeID: "typhus", Date: d("2024-01-01")}))
	require.NoError(t, careRepo.Create(ctx, care.Event{ID: "e2", AnimalID: "a1", Kind: care.KindDeworming, TypeID: "milbemax", Date: d("2024-12-01")}))

	svc := careplan.NewService(animalRepo, careRepo, careRepo)
	careplan.SetNow(svc, func() time.Time { return d(ref) })
	return svc
}

func TestService_DueReminders_OneKindOnly(t *testing.T) {
	svc := newTestService(t, "2025-01-15")

	items, err := svc.DueReminders(context.Background(), care.KindVaccination, 30)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, care.KindVaccination, items[0].Kind)
	assert.Equal(t, careplan.StatusLate, items[0].Status)

	items, err = svc.DueReminders(context.Background(), care.KindDeworming, 30)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, care.KindDeworming, items[0].Kind)
}

func TestService_DueReminders_RejectsUntypedKind(t *testing.T) {
	svc := newTestService(t, "2025-01-15")

	for _, kind := range []care.Kind{"", care.KindWeight, "grooming"} {
		_, err := svc.DueReminders(context.Background(), kind, 30)
		assert.ErrorIs(t, err, care.ErrInvalidInput, "kind %q", kind)
	}
}

func TestService_Counters_UsesHorizonPerKind(t *testing.T) {
	svc := newTestService(t, "2025-01-15")
	ctx := context.Background()

	// desparasitación vence el 2025-01-30: 15 días
	counters, err := svc.Counters(ctx, careplan.Horizons{Vaccination: 30, Deworming: 7})
	require.NoError(t, err)
	require.Len(t, counters, 2)
	assert.Equal(t, care.KindDeworming, counters[0].Kind)
	assert.Zero(t, counters[0].Soon)
	assert.Equal(t, "typhus", counters[1].TypeID)
	assert.Equal(t, 1, counters[1].Late)

	counters, err = svc.Counters(ctx, careplan.Horizons{Vaccination: 30, Deworming: 20})
	require.NoError(t, err)
	require.Len(t, counters, 2)
	assert.Equal(t, 1, counters[0].Soon)
}
