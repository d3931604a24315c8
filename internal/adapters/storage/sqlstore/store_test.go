package sqlstore

import (
	"context"
	"testing"
	"time"

	"cat-shelter-admin/internal/adapters/storage/sqlite"
	"cat-shelter-admin/internal/domain/animals"
	"cat-shelter-admin/internal/domain/appointments"
	"cat-shelter-admin/internal/domain/care"
	"cat-shelter-admin/internal/domain/notes"
	"cat-shelter-admin/internal/domain/staff"
	"cat-shelter-admin/internal/domain/tasks"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sqlite.Open(sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := New(db, SQLite)
	require.NoError(t, s.Migrate(context.Background()))
	// idempotente
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func day(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

var created = time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)

func mkAnimal(id, name string) animals.Animal {
	return animals.Animal{
		ID:        id,
		Name:      name,
		Species:   animals.SpeciesCat,
		Sex:       animals.SexFemale,
		Status:    animals.StatusNormal,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestDialect_Rebind(t *testing.T) {
	q := `UPDATE x SET a = $1, b = $2 WHERE id = $10`
	assert.Equal(t, q, Postgres.Rebind(q))
	assert.Equal(t, `UPDATE x SET a = ?, b = ? WHERE id = ?`, SQLite.Rebind(q))
}

func TestStatements_SkipsComments(t *testing.T) {
	got := statements("-- header\nCREATE TABLE a (x INT);\n\n-- other\nCREATE INDEX i ON a (x);\n")
	assert.Equal(t, []string{"CREATE TABLE a (x INT)", "CREATE INDEX i ON a (x)"}, got)
}

func TestAnimalsRepo_RoundTripAndFilters(t *testing.T) {
	s := newTestStore(t)
	repo := s.Animals()
	ctx := context.Background()

	minou := mkAnimal("1", "Minou")
	minou.BirthDate = day("2022-05-10")
	minou.EntryDate = day("2024-01-03")
	minou.EntryReason = "Abandon"
	require.NoError(t, repo.Create(ctx, minou))

	eclair := mkAnimal("2", "Éclair")
	eclair.Status = animals.StatusAdopted
	eclair.ExitDate = day("2024-06-01")
	require.NoError(t, repo.Create(ctx, eclair))

	foster := mkAnimal("3", "Accueil")
	foster.Status = animals.StatusFoster
	foster.ExitDate = day("2024-07-01")
	require.NoError(t, repo.Create(ctx, foster))

	got, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	if diff := cmp.Diff(minou, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, animals.ErrNotFound)

	residents, err := repo.List(ctx, animals.ListFilter{ResidentOnly: true})
	require.NoError(t, err)
	require.Len(t, residents, 2)
	assert.Equal(t, "Accueil", residents[0].Name)
	assert.Equal(t, "Minou", residents[1].Name)

	// plegado Unicode: "éCLAIR" encuentra "Éclair"
	found, err := repo.List(ctx, animals.ListFilter{Query: "éCLAIR"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "2", found[0].ID)

	adopted, err := repo.List(ctx, animals.ListFilter{Status: animals.StatusAdopted, Species: animals.SpeciesCat})
	require.NoError(t, err)
	require.Len(t, adopted, 1)

	minou.ExitDate = day("2025-02-01")
	minou.ExitReason = "Placé"
	minou.BirthDate = nil
	require.NoError(t, repo.Update(ctx, minou))
	got, err = repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Nil(t, got.BirthDate)
	assert.Equal(t, *day("2025-02-01"), *got.ExitDate)

	assert.ErrorIs(t, repo.Update(ctx, mkAnimal("nope", "x")), animals.ErrNotFound)
}

func TestCareRepo_HistoryAndCatalog(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Animals().Create(ctx, mkAnimal("a1", "Minou")))
	repo := s.Care()

	require.NoError(t, repo.CreateType(ctx, care.CareType{ID: "typhus", Kind: care.KindVaccination, Name: "Typhus", Active: true}))
	assert.ErrorIs(t, repo.CreateType(ctx, care.CareType{ID: "x", Kind: care.KindVaccination, Name: "TYPHUS", Active: true}), care.ErrDuplicate)

	rec := time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC)
	events := []care.Event{
		{ID: "e2", AnimalID: "a1", Kind: care.KindVaccination, TypeID: "typhus", Date: *day("2024-01-01"), RecordedAt: rec.Add(time.Minute), Primer: true},
		{ID: "e1", AnimalID: "a1", Kind: care.KindVaccination, TypeID: "typhus", Date: *day("2024-01-01"), RecordedAt: rec, Lot: "L1"},
		{ID: "e0", AnimalID: "a1", Kind: care.KindVaccination, TypeID: "typhus", Date: *day("2023-01-01"), RecordedAt: rec},
		{ID: "w1", AnimalID: "a1", Kind: care.KindWeight, Date: *day("2024-02-01"), Value: 4.2, RecordedAt: rec},
	}
	for _, e := range events {
		require.NoError(t, repo.Create(ctx, e))
	}

	hist, err := repo.HistoryFor(ctx, "a1", care.KindVaccination)
	require.NoError(t, err)
	ids := []string{}
	for _, e := range hist {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"e0", "e1", "e2"}, ids)
	assert.True(t, hist[2].Primer)
	assert.Equal(t, "L1", hist[1].Lot)

	weights, err := repo.ListByKind(ctx, care.KindWeight)
	require.NoError(t, err)
	require.Len(t, weights, 1)
	assert.Equal(t, "", weights[0].TypeID)
	assert.InDelta(t, 4.2, weights[0].Value, 1e-9)

	require.NoError(t, repo.UpdateType(ctx, care.CareType{ID: "typhus", Kind: care.KindVaccination, Name: "Typhus", Active: false}))
	ct, err := repo.GetType(ctx, "typhus")
	require.NoError(t, err)
	assert.False(t, ct.Active)

	types, err := repo.ListTypes(ctx)
	require.NoError(t, err)
	assert.Len(t, types, 1)

	require.NoError(t, repo.Delete(ctx, "w1"))
	assert.ErrorIs(t, repo.Delete(ctx, "w1"), care.ErrNotFound)
	_, err = repo.GetType(ctx, "missing")
	assert.ErrorIs(t, err, care.ErrTypeNotFound)
}

func TestNotesRepo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Animals().Create(ctx, mkAnimal("a1", "Minou")))
	repo := s.Notes()

	require.NoError(t, repo.Create(ctx, notes.Note{ID: "n1", AnimalID: "a1", Content: "Éternue", CreatedAt: created}))
	require.NoError(t, repo.Create(ctx, notes.Note{ID: "n2", AnimalID: "a1", Content: "Mange bien", CreatedAt: created.Add(time.Hour)}))

	list, err := repo.ListByAnimal(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "n2", list[0].ID)

	found, err := repo.Search(ctx, "éternue")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "n1", found[0].ID)
}

func TestStaffAndTasksRepo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	sr := s.Staff()

	require.NoError(t, sr.Create(ctx, staff.Member{ID: "b", Name: "Bob", Role: staff.RoleEmployee, Active: true, CreatedAt: created}))
	require.NoError(t, sr.Create(ctx, staff.Member{ID: "v", Name: "Dr Vet", Role: staff.RoleVeterinarian, Active: true, CreatedAt: created}))
	require.NoError(t, sr.Update(ctx, staff.Member{ID: "b", Name: "Bob", Role: staff.RoleEmployee, Active: false}))

	active, err := sr.List(ctx, staff.ListFilter{ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "v", active[0].ID)

	vets, err := sr.List(ctx, staff.ListFilter{Role: staff.RoleVeterinarian})
	require.NoError(t, err)
	assert.Len(t, vets, 1)

	tr := s.Tasks()
	require.NoError(t, tr.Create(ctx, tasks.Task{ID: "t1", Title: "Litières", IntervalDays: 1, AssigneeID: "b", Active: true, CreatedAt: created}))
	require.NoError(t, tr.Create(ctx, tasks.Task{ID: "t2", Title: "Brossage", IntervalDays: 7, Active: false, CreatedAt: created}))

	done := created.Add(48 * time.Hour)
	task, err := tr.GetByID(ctx, "t1")
	require.NoError(t, err)
	assert.Nil(t, task.LastDoneAt)
	task.LastDoneAt = &done
	require.NoError(t, tr.Update(ctx, task))

	task, err = tr.GetByID(ctx, "t1")
	require.NoError(t, err)
	require.NotNil(t, task.LastDoneAt)
	assert.True(t, task.LastDoneAt.Equal(done))
	assert.Equal(t, "b", task.AssigneeID)

	onlyActive, err := tr.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, onlyActive, 1)
	all, err := tr.List(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, "Brossage", all[0].Title)

	_, err = tr.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, tasks.ErrNotFound)
}

func TestAppointmentsRepo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Animals().Create(ctx, mkAnimal("a1", "Minou")))
	require.NoError(t, s.Animals().Create(ctx, mkAnimal("a2", "Tigrou")))
	require.NoError(t, s.Staff().Create(ctx, staff.Member{ID: "alice", Name: "Alice", Role: staff.RoleEmployee, Active: true, CreatedAt: created}))
	repo := s.Appointments()

	at := time.Date(2025, 4, 10, 14, 30, 0, 0, time.UTC)
	appt := appointments.Appointment{
		ID:        "r1",
		At:        at,
		Location:  "Clinique",
		AnimalIDs: []string{"a2", "a1"},
		StaffIDs:  []string{"alice"},
		CreatedAt: created,
	}
	require.NoError(t, repo.Create(ctx, appt))
	require.NoError(t, repo.Create(ctx, appointments.Appointment{ID: "r0", At: at.Add(-48 * time.Hour), Location: "Rendez-vous", CreatedAt: created}))

	got, err := repo.GetByID(ctx, "r1")
	require.NoError(t, err)
	if diff := cmp.Diff(appt, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}

	from := at.Add(-time.Hour)
	upcoming, err := repo.List(ctx, appointments.ListFilter{From: &from})
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "r1", upcoming[0].ID)

	all, err := repo.List(ctx, appointments.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "r0", all[0].ID)
	assert.Empty(t, all[0].AnimalIDs)

	require.NoError(t, repo.Delete(ctx, "r1"))
	assert.ErrorIs(t, repo.Delete(ctx, "r1"), appointments.ErrNotFound)
	_, err = repo.GetByID(ctx, "r1")
	assert.ErrorIs(t, err, appointments.ErrNotFound)
}
