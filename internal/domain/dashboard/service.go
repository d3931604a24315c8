// Package dashboard arma los totales y contadores de la pantalla principal.
package dashboard

import (
	"context"

	"cat-shelter-admin/internal/domain/animals"
	"cat-shelter-admin/internal/domain/appointments"
	"cat-shelter-admin/internal/domain/care"
	"cat-shelter-admin/internal/domain/careplan"
	"cat-shelter-admin/internal/domain/staff"
	"cat-shelter-admin/internal/domain/tasks"
)

type AnimalSource interface {
	ListAll(ctx context.Context) ([]animals.Animal, error)
}

type AppointmentSource interface {
	Upcoming(ctx context.Context) ([]appointments.Appointment, error)
}

type StaffSource interface {
	List(ctx context.Context, filter staff.ListFilter) ([]staff.Member, error)
}

type CatalogSource interface {
	Catalog(ctx context.Context) (care.Catalog, error)
}

type ReminderSource interface {
	Counters(ctx context.Context, h careplan.Horizons) ([]careplan.KindCounter, error)
}

type TaskSource interface {
	Due(ctx context.Context, horizonDays int) ([]tasks.DueTask, error)
}

type Sources struct {
	Animals      AnimalSource
	Appointments AppointmentSource
	Staff        StaffSource
	Catalog      CatalogSource
	Reminders    ReminderSource
	Tasks        TaskSource
}

type Summary struct {
	Animals              int
	Residents            int
	UpcomingAppointments int
	ActiveStaff          int
	CareTypes            int
	Reminders            []careplan.KindCounter
	TasksLate            int
	TasksSoon            int
}

type Service struct {
	src         Sources
	horizons    careplan.Horizons
	taskHorizon int
}

func NewService(src Sources, horizons careplan.Horizons, taskHorizon int) *Service {
	return &Service{src: src, horizons: horizons, taskHorizon: taskHorizon}
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	var out Summary

	all, err := s.src.Animals.ListAll(ctx)
	if err != nil {
		return Summary{}, err
	}
	out.Animals = len(all)
	for _, a := range all {
		if careplan.IsResident(a) {
			out.Residents++
		}
	}

	upcoming, err := s.src.Appointments.Upcoming(ctx)
	if err != nil {
		return Summary{}, err
	}
	out.UpcomingAppointments = len(upcoming)

	members, err := s.src.Staff.List(ctx, staff.ListFilter{ActiveOnly: true})
	if err != nil {
		return Summary{}, err
	}
	out.ActiveStaff = len(members)

	cat, err := s.src.Catalog.Catalog(ctx)
	if err != nil {
		return Summary{}, err
	}
	out.CareTypes = len(cat.All(""))

	out.Reminders, err = s.src.Reminders.Counters(ctx, s.horizons)
	if err != nil {
		return Summary{}, err
	}

	due, err := s.src.Tasks.Due(ctx, s.taskHorizon)
	if err != nil {
		return Summary{}, err
	}
	for _, d := range due {
		switch d.Status {
		case careplan.StatusLate:
			out.TasksLate++
		case careplan.StatusSoon:
			out.TasksSoon++
		}
	}

	return out, nil
}
