package tasks

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"cat-shelter-admin/internal/domain/careplan"
	"cat-shelter-admin/internal/platform/dates"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrAssigneeNotFound = errors.New("assignee not found")
)

type StaffLookup interface {
	Exists(ctx context.Context, id string) (bool, error)
}

type Service struct {
	repo  Repository
	staff StaffLookup
	now   func() time.Time
}

func NewService(repo Repository, staff StaffLookup) *Service {
	return &Service{
		repo:  repo,
		staff: staff,
		now:   time.Now,
	}
}

type CreateInput struct {
	Title        string
	IntervalDays int
	AssigneeID   string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Task, error) {
	title := strings.Join(strings.Fields(in.Title), " ")
	if title == "" {
		return Task{}, fmt.Errorf("%w: title required", ErrInvalidInput)
	}
	if in.IntervalDays <= 0 {
		return Task{}, fmt.Errorf("%w: interval_days must be > 0", ErrInvalidInput)
	}
	assignee := strings.TrimSpace(in.AssigneeID)
	if assignee != "" {
		ok, err := s.staff.Exists(ctx, assignee)
		if err != nil {
			return Task{}, err
		}
		if !ok {
			return Task{}, ErrAssigneeNotFound
		}
	}

	t := Task{
		ID:           uuid.NewString(),
		Title:        title,
		IntervalDays: in.IntervalDays,
		AssigneeID:   assignee,
		Active:       true,
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return Task{}, err
	}
	return t, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Task, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Task{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, activeOnly bool) ([]Task, error) {
	return s.repo.List(ctx, activeOnly)
}

// Complete marca la tarea como hecha el día at (zero = hoy, en la zona del reloj).
// LastDoneAt se guarda como día de calendario, igual que las fechas de cuidados,
// para que Due compare contra el día local de la referencia.
func (s *Service) Complete(ctx context.Context, id string, at time.Time) (Task, error) {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return Task{}, err
	}
	if at.IsZero() {
		at = s.now()
	}
	t.LastDoneAt = dates.Ptr(at)
	if err := s.repo.Update(ctx, t); err != nil {
		return Task{}, err
	}
	return t, nil
}

func (s *Service) SetActive(ctx context.Context, id string, active bool) (Task, error) {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return Task{}, err
	}
	t.Active = active
	if err := s.repo.Update(ctx, t); err != nil {
		return Task{}, err
	}
	return t, nil
}

// DueTask: NextDue nil = nunca realizada (cuenta como vencida).
type DueTask struct {
	Task     Task
	NextDue  *time.Time
	DaysLeft int
	Status   careplan.DueStatus
}

// Due aplica las mismas reglas late/soon que los recordatorios de cuidados.
func (s *Service) Due(ctx context.Context, horizonDays int) ([]DueTask, error) {
	if horizonDays < 0 {
		return nil, careplan.ErrInvalidHorizon
	}
	items, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, err
	}
	return ComputeDue(items, s.now(), horizonDays), nil
}

func ComputeDue(items []Task, ref time.Time, horizonDays int) []DueTask {
	out := make([]DueTask, 0)
	for _, t := range items {
		if !t.Active {
			continue
		}
		if t.LastDoneAt == nil {
			out = append(out, DueTask{Task: t, Status: careplan.StatusLate})
			continue
		}
		next := dates.Day(*t.LastDoneAt).AddDate(0, 0, t.IntervalDays)
		status, daysLeft, due := careplan.Classify(next, ref, horizonDays)
		if !due {
			continue
		}
		out = append(out, DueTask{Task: t, NextDue: &next, DaysLeft: daysLeft, Status: status})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if (a.Status == careplan.StatusLate) != (b.Status == careplan.StatusLate) {
			return a.Status == careplan.StatusLate
		}
		if (a.NextDue == nil) != (b.NextDue == nil) {
			return a.NextDue == nil
		}
		if a.DaysLeft != b.DaysLeft {
			return a.DaysLeft < b.DaysLeft
		}
		return a.Task.Title < b.Task.Title
	})
	return out
}
