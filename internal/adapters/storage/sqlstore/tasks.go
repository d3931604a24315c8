package sqlstore

import (
	"context"
	"database/sql"
	"strings"

	"cat-shelter-admin/internal/domain/tasks"
)

type TasksRepo struct {
	s *Store
}

func (s *Store) Tasks() *TasksRepo { return &TasksRepo{s: s} }

const taskColumns = `id, title, interval_days, last_done_at, assignee_id, active, created_at`

func (r *TasksRepo) Create(ctx context.Context, t tasks.Task) error {
	_, err := r.s.exec(ctx, `
		INSERT INTO tasks (`+taskColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		t.ID,
		t.Title,
		t.IntervalDays,
		toNullTime(t.LastDoneAt),
		toNullString(t.AssigneeID),
		t.Active,
		t.CreatedAt.UTC(),
	)
	return err
}

func (r *TasksRepo) Update(ctx context.Context, t tasks.Task) error {
	res, err := r.s.exec(ctx, `
		UPDATE tasks
		SET title = $1, interval_days = $2, last_done_at = $3, assignee_id = $4, active = $5
		WHERE id = $6
	`,
		t.Title,
		t.IntervalDays,
		toNullTime(t.LastDoneAt),
		toNullString(t.AssigneeID),
		t.Active,
		t.ID,
	)
	if err != nil {
		return err
	}
	return expectOne(res, tasks.ErrNotFound)
}

func (r *TasksRepo) GetByID(ctx context.Context, id string) (tasks.Task, error) {
	row := r.s.queryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, strings.TrimSpace(id))
	t, err := scanTask(row)
	if err != nil {
		return tasks.Task{}, notFoundOr(err, tasks.ErrNotFound)
	}
	return t, nil
}

func (r *TasksRepo) List(ctx context.Context, activeOnly bool) ([]tasks.Task, error) {
	q := `SELECT ` + taskColumns + ` FROM tasks`
	if activeOnly {
		q += ` WHERE active = TRUE`
	}
	q += ` ORDER BY title ASC, id ASC`

	rows, err := r.s.query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]tasks.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func scanTask(sc scanner) (tasks.Task, error) {
	var (
		t        tasks.Task
		lastDone sql.NullTime
		assignee sql.NullString
	)
	if err := sc.Scan(&t.ID, &t.Title, &t.IntervalDays, &lastDone, &assignee, &t.Active, &t.CreatedAt); err != nil {
		return tasks.Task{}, err
	}
	t.LastDoneAt = fromNullTime(lastDone)
	t.AssigneeID = assignee.String
	t.CreatedAt = t.CreatedAt.UTC()
	return t, nil
}
