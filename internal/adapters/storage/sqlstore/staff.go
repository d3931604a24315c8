package sqlstore

import (
	"context"
	"strings"

	"cat-shelter-admin/internal/domain/staff"
)

type StaffRepo struct {
	s *Store
}

func (s *Store) Staff() *StaffRepo { return &StaffRepo{s: s} }

const staffColumns = `id, name, role, phone, email, active, created_at`

func (r *StaffRepo) Create(ctx context.Context, m staff.Member) error {
	_, err := r.s.exec(ctx, `
		INSERT INTO staff (`+staffColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`, m.ID, m.Name, string(m.Role), m.Phone, m.Email, m.Active, m.CreatedAt.UTC())
	return err
}

func (r *StaffRepo) Update(ctx context.Context, m staff.Member) error {
	res, err := r.s.exec(ctx, `
		UPDATE staff
		SET name = $1, role = $2, phone = $3, email = $4, active = $5
		WHERE id = $6
	`, m.Name, string(m.Role), m.Phone, m.Email, m.Active, m.ID)
	if err != nil {
		return err
	}
	return expectOne(res, staff.ErrNotFound)
}

func (r *StaffRepo) GetByID(ctx context.Context, id string) (staff.Member, error) {
	row := r.s.queryRow(ctx, `SELECT `+staffColumns+` FROM staff WHERE id = $1`, strings.TrimSpace(id))
	m, err := scanMember(row)
	if err != nil {
		return staff.Member{}, notFoundOr(err, staff.ErrNotFound)
	}
	return m, nil
}

func (r *StaffRepo) List(ctx context.Context, filter staff.ListFilter) ([]staff.Member, error) {
	where := make([]string, 0, 2)
	args := make([]any, 0, 1)
	if filter.Role != "" {
		args = append(args, string(filter.Role))
		where = append(where, "role = $1")
	}
	if filter.ActiveOnly {
		where = append(where, "active = TRUE")
	}

	q := `SELECT ` + staffColumns + ` FROM staff`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	q += ` ORDER BY name ASC, id ASC`

	rows, err := r.s.query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]staff.Member, 0)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func scanMember(sc scanner) (staff.Member, error) {
	var (
		m    staff.Member
		role string
	)
	if err := sc.Scan(&m.ID, &m.Name, &role, &m.Phone, &m.Email, &m.Active, &m.CreatedAt); err != nil {
		return staff.Member{}, err
	}
	m.Role = staff.Role(role)
	m.CreatedAt = m.CreatedAt.UTC()
	return m, nil
}
