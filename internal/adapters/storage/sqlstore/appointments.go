package sqlstore

import (
	"context"
	"database/sql"
	"strings"

	"cat-shelter-admin/internal/domain/appointments"
)

type AppointmentsRepo struct {
	s *Store
}

func (s *Store) Appointments() *AppointmentsRepo { return &AppointmentsRepo{s: s} }

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) error {
	d := r.s.dialect
	return r.s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, d.Rebind(`
			INSERT INTO appointments (id, scheduled_at, location, notes, created_at)
			VALUES ($1,$2,$3,$4,$5)
		`), a.ID, a.At.UTC(), a.Location, a.Notes, a.CreatedAt.UTC()); err != nil {
			return err
		}
		for i, id := range a.AnimalIDs {
			if _, err := tx.ExecContext(ctx, d.Rebind(`
				INSERT INTO appointment_animals (appointment_id, animal_id, ord) VALUES ($1,$2,$3)
			`), a.ID, id, i); err != nil {
				return err
			}
		}
		for i, id := range a.StaffIDs {
			if _, err := tx.ExecContext(ctx, d.Rebind(`
				INSERT INTO appointment_staff (appointment_id, staff_id, ord) VALUES ($1,$2,$3)
			`), a.ID, id, i); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	var a appointments.Appointment
	err := r.s.queryRow(ctx, `
		SELECT id, scheduled_at, location, notes, created_at FROM appointments WHERE id = $1
	`, strings.TrimSpace(id)).Scan(&a.ID, &a.At, &a.Location, &a.Notes, &a.CreatedAt)
	if err != nil {
		return appointments.Appointment{}, notFoundOr(err, appointments.ErrNotFound)
	}

	items := []appointments.Appointment{a}
	if err := r.attach(ctx, items); err != nil {
		return appointments.Appointment{}, err
	}
	return items[0], nil
}

// Delete borra la cita; los vínculos caen por ON DELETE CASCADE y además se
// borran explícitamente por si la conexión SQLite no tiene foreign_keys activo.
func (r *AppointmentsRepo) Delete(ctx context.Context, id string) error {
	d := r.s.dialect
	return r.s.inTx(ctx, func(tx *sql.Tx) error {
		for _, q := range []string{
			`DELETE FROM appointment_animals WHERE appointment_id = $1`,
			`DELETE FROM appointment_staff WHERE appointment_id = $1`,
		} {
			if _, err := tx.ExecContext(ctx, d.Rebind(q), id); err != nil {
				return err
			}
		}
		res, err := tx.ExecContext(ctx, d.Rebind(`DELETE FROM appointments WHERE id = $1`), id)
		if err != nil {
			return err
		}
		return expectOne(res, appointments.ErrNotFound)
	})
}

func (r *AppointmentsRepo) List(ctx context.Context, filter appointments.ListFilter) ([]appointments.Appointment, error) {
	where := make([]string, 0, 2)
	args := make([]any, 0, 2)
	if filter.From != nil {
		args = append(args, filter.From.UTC())
		where = append(where, "scheduled_at >= $"+itoa(len(args)))
	}
	if filter.Before != nil {
		args = append(args, filter.Before.UTC())
		where = append(where, "scheduled_at < $"+itoa(len(args)))
	}

	q := `SELECT id, scheduled_at, location, notes, created_at FROM appointments`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	q += ` ORDER BY scheduled_at ASC, id ASC`

	rows, err := r.s.query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]appointments.Appointment, 0)
	for rows.Next() {
		var a appointments.Appointment
		if err := rows.Scan(&a.ID, &a.At, &a.Location, &a.Notes, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.attach(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// attach carga animales y personal de cada cita (una query por tabla de vínculo).
func (r *AppointmentsRepo) attach(ctx context.Context, items []appointments.Appointment) error {
	if len(items) == 0 {
		return nil
	}
	idx := make(map[string]int, len(items))
	for i := range items {
		items[i].At = items[i].At.UTC()
		items[i].CreatedAt = items[i].CreatedAt.UTC()
		items[i].AnimalIDs = []string{}
		items[i].StaffIDs = []string{}
		idx[items[i].ID] = i
	}

	links := []struct {
		query string
		add   func(a *appointments.Appointment, id string)
	}{
		{
			`SELECT appointment_id, animal_id FROM appointment_animals ORDER BY appointment_id, ord`,
			func(a *appointments.Appointment, id string) { a.AnimalIDs = append(a.AnimalIDs, id) },
		},
		{
			`SELECT appointment_id, staff_id FROM appointment_staff ORDER BY appointment_id, ord`,
			func(a *appointments.Appointment, id string) { a.StaffIDs = append(a.StaffIDs, id) },
		},
	}
	for _, l := range links {
		if err := r.scanLinks(ctx, l.query, func(apptID, id string) {
			if i, ok := idx[apptID]; ok {
				l.add(&items[i], id)
			}
		}); err != nil {
			return err
		}
	}
	return nil
}

func (r *AppointmentsRepo) scanLinks(ctx context.Context, q string, fn func(apptID, id string)) error {
	rows, err := r.s.query(ctx, q)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var apptID, id string
		if err := rows.Scan(&apptID, &id); err != nil {
			return err
		}
		fn(apptID, id)
	}
	return rows.Err()
}
