package memory

import (
	"context"
	"testing"
	"time"

	"cat-shelter-admin/internal/domain/appointments"
	"cat-shelter-admin/internal/domain/care"
	"cat-shelter-admin/internal/domain/notes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCareRepo_HistoryOrder(t *testing.T) {
	repo := NewCareRepo()
	ctx := context.Background()
	day := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rec := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)

	for _, e := range []care.Event{
		{ID: "late", AnimalID: "a1", Kind: care.KindVaccination, Date: day.AddDate(0, 1, 0), RecordedAt: rec},
		{ID: "first", AnimalID: "a1", Kind: care.KindVaccination, Date: day, RecordedAt: rec},
		{ID: "second", AnimalID: "a1", Kind: care.KindVaccination, Date: day, RecordedAt: rec},
		{ID: "other", AnimalID: "a2", Kind: care.KindVaccination, Date: day, RecordedAt: rec},
		{ID: "weight", AnimalID: "a1", Kind: care.KindWeight, Date: day, RecordedAt: rec},
	} {
		require.NoError(t, repo.Create(ctx, e))
	}

	hist, err := repo.HistoryFor(ctx, "a1", care.KindVaccination)
	require.NoError(t, err)
	ids := []string{}
	for _, e := range hist {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"first", "second", "late"}, ids)

	all, err := repo.ListByKind(ctx, care.KindVaccination)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	require.NoError(t, repo.Delete(ctx, "first"))
	assert.ErrorIs(t, repo.Delete(ctx, "first"), care.ErrNotFound)
}

func TestCareRepo_TypesUniquePerKind(t *testing.T) {
	repo := NewCareRepo()
	ctx := context.Background()

	require.NoError(t, repo.CreateType(ctx, care.CareType{ID: "1", Kind: care.KindVaccination, Name: "Rage", Active: true}))
	assert.ErrorIs(t, repo.CreateType(ctx, care.CareType{ID: "2", Kind: care.KindVaccination, Name: "RAGE"}), care.ErrDuplicate)
	require.NoError(t, repo.CreateType(ctx, care.CareType{ID: "3", Kind: care.KindDeworming, Name: "Rage"}))

	_, err := repo.GetType(ctx, "2")
	assert.ErrorIs(t, err, care.ErrTypeNotFound)
}

func TestNoteRepo_SearchFoldsCase(t *testing.T) {
	repo := NewNoteRepo()
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, notes.Note{ID: "1", AnimalID: "a", Content: "ÉTERNUE beaucoup", CreatedAt: base}))
	require.NoError(t, repo.Create(ctx, notes.Note{ID: "2", AnimalID: "a", Content: "éternue encore", CreatedAt: base.Add(time.Hour)}))
	require.NoError(t, repo.Create(ctx, notes.Note{ID: "3", AnimalID: "b", Content: "mange bien", CreatedAt: base}))

	found, err := repo.Search(ctx, "éternue")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "2", found[0].ID)

	all, err := repo.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestAppointmentRepo_ListRange(t *testing.T) {
	repo := NewAppointmentRepo()
	ctx := context.Background()
	base := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(ctx, appointments.Appointment{ID: id, At: base.AddDate(0, 0, i)}))
	}
	from := base.AddDate(0, 0, 1)
	items, err := repo.List(ctx, appointments.ListFilter{From: &from})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[0].ID)

	before := from
	items, err = repo.List(ctx, appointments.ListFilter{Before: &before})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0].ID)
}
