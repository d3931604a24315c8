package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"cat-shelter-admin/internal/domain/animals"
	"cat-shelter-admin/internal/domain/appointments"
	"cat-shelter-admin/internal/domain/care"
	"cat-shelter-admin/internal/domain/careplan"
	"cat-shelter-admin/internal/domain/staff"
	"cat-shelter-admin/internal/domain/tasks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSources struct {
	animals  []animals.Animal
	gotH     careplan.Horizons
	gotTaskH int
	failDue  bool
}

func (f *fakeSources) ListAll(ctx context.Context) ([]animals.Animal, error) { return f.animals, nil }

func (f *fakeSources) Upcoming(ctx context.Context) ([]appointments.Appointment, error) {
	return []appointments.Appointment{{ID: "x"}}, nil
}

func (f *fakeSources) List(ctx context.Context, filter staff.ListFilter) ([]staff.Member, error) {
	if !filter.ActiveOnly {
		return nil, errors.New("expected active-only filter")
	}
	return []staff.Member{{ID: "alice"}, {ID: "bob"}}, nil
}

func (f *fakeSources) Catalog(ctx context.Context) (care.Catalog, error) {
	return care.NewCatalog([]care.CareType{
		{ID: "t", Kind: care.KindVaccination, Name: "Typhus", Active: true},
		{ID: "m", Kind: care.KindDeworming, Name: "Milbemax", Active: false},
	}), nil
}

func (f *fakeSources) Counters(ctx context.Context, h careplan.Horizons) ([]careplan.KindCounter, error) {
	f.gotH = h
	return []careplan.KindCounter{{Kind: care.KindDeworming, Label: "deworming", Late: 1}}, nil
}

func (f *fakeSources) Due(ctx context.Context, horizon int) ([]tasks.DueTask, error) {
	f.gotTaskH = horizon
	if f.failDue {
		return nil, errors.New("boom")
	}
	return []tasks.DueTask{
		{Status: careplan.StatusLate},
		{Status: careplan.StatusLate},
		{Status: careplan.StatusSoon},
	}, nil
}

func TestService_Summary(t *testing.T) {
	exit := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	f := &fakeSources{animals: []animals.Animal{
		{ID: "1", Status: animals.StatusNormal},
		{ID: "2", Status: animals.StatusAdopted, ExitDate: &exit},
		{ID: "3", Status: animals.StatusFoster, ExitDate: &exit},
	}}
	src := Sources{Animals: f, Appointments: f, Staff: f, Catalog: f, Reminders: f, Tasks: f}
	svc := NewService(src, careplan.Horizons{Vaccination: 30, Deworming: 7}, 3)

	s, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, s.Animals)
	assert.Equal(t, 2, s.Residents)
	assert.Equal(t, 1, s.UpcomingAppointments)
	assert.Equal(t, 2, s.ActiveStaff)
	assert.Equal(t, 2, s.CareTypes)
	assert.Equal(t, 2, s.TasksLate)
	assert.Equal(t, 1, s.TasksSoon)
	assert.Equal(t, careplan.Horizons{Vaccination: 30, Deworming: 7}, f.gotH)
	assert.Equal(t, 3, f.gotTaskH)

	f.failDue = true
	_, err = svc.Summary(context.Background())
	assert.Error(t, err)
}
