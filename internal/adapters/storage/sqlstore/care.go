package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"cat-shelter-admin/internal/domain/care"
)

// CareRepo implementa care.Repository y care.TypeRepository.
type CareRepo struct {
	s *Store
}

func (s *Store) Care() *CareRepo { return &CareRepo{s: s} }

const eventColumns = `
	id, animal_id, kind, type_id, event_date, primer, value,
	lot, veterinarian, reaction, notes, recorded_at`

func (r *CareRepo) Create(ctx context.Context, e care.Event) error {
	_, err := r.s.exec(ctx, `
		INSERT INTO care_events (`+eventColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`,
		e.ID,
		e.AnimalID,
		string(e.Kind),
		toNullString(e.TypeID),
		toNullDate(&e.Date),
		e.Primer,
		e.Value,
		e.Lot,
		e.Veterinarian,
		e.Reaction,
		e.Notes,
		e.RecordedAt.UTC(),
	)
	return err
}

func (r *CareRepo) GetByID(ctx context.Context, id string) (care.Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return care.Event{}, care.ErrNotFound
	}
	row := r.s.queryRow(ctx, `SELECT `+eventColumns+` FROM care_events WHERE id = $1`, id)
	e, err := scanEvent(row)
	if err != nil {
		return care.Event{}, notFoundOr(err, care.ErrNotFound)
	}
	return e, nil
}

func (r *CareRepo) Delete(ctx context.Context, id string) error {
	res, err := r.s.exec(ctx, `DELETE FROM care_events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectOne(res, care.ErrNotFound)
}

func (r *CareRepo) HistoryFor(ctx context.Context, animalID string, kind care.Kind) ([]care.Event, error) {
	return r.list(ctx, `
		SELECT `+eventColumns+`
		FROM care_events
		WHERE animal_id = $1 AND kind = $2
		ORDER BY event_date ASC, recorded_at ASC, id ASC
	`, animalID, string(kind))
}

func (r *CareRepo) ListByKind(ctx context.Context, kind care.Kind) ([]care.Event, error) {
	return r.list(ctx, `
		SELECT `+eventColumns+`
		FROM care_events
		WHERE kind = $1
		ORDER BY event_date ASC, recorded_at ASC, id ASC
	`, string(kind))
}

func (r *CareRepo) list(ctx context.Context, q string, args ...any) ([]care.Event, error) {
	rows, err := r.s.query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]care.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanEvent(sc scanner) (care.Event, error) {
	var (
		e      care.Event
		kind   string
		typeID sql.NullString
		date   sql.NullTime
	)
	if err := sc.Scan(
		&e.ID,
		&e.AnimalID,
		&kind,
		&typeID,
		&date,
		&e.Primer,
		&e.Value,
		&e.Lot,
		&e.Veterinarian,
		&e.Reaction,
		&e.Notes,
		&e.RecordedAt,
	); err != nil {
		return care.Event{}, err
	}
	e.Kind = care.Kind(kind)
	e.TypeID = typeID.String
	if d := fromNullDate(date); d != nil {
		e.Date = *d
	}
	e.RecordedAt = e.RecordedAt.UTC()
	return e, nil
}

// -------------------------
// Catálogo
// -------------------------

func (r *CareRepo) CreateType(ctx context.Context, t care.CareType) error {
	// chequeo explícito: el UNIQUE de la tabla distingue mayúsculas
	var n int
	err := r.s.queryRow(ctx, `
		SELECT COUNT(*) FROM care_types WHERE kind = $1 AND LOWER(name) = LOWER($2)
	`, string(t.Kind), t.Name).Scan(&n)
	if err != nil {
		return err
	}
	if n > 0 {
		return care.ErrDuplicate
	}

	_, err = r.s.exec(ctx, `
		INSERT INTO care_types (id, kind, name, active) VALUES ($1,$2,$3,$4)
	`, t.ID, string(t.Kind), t.Name, t.Active)
	return err
}

func (r *CareRepo) UpdateType(ctx context.Context, t care.CareType) error {
	res, err := r.s.exec(ctx, `
		UPDATE care_types SET name = $1, active = $2 WHERE id = $3
	`, t.Name, t.Active, t.ID)
	if err != nil {
		return err
	}
	return expectOne(res, care.ErrTypeNotFound)
}

func (r *CareRepo) GetType(ctx context.Context, id string) (care.CareType, error) {
	var (
		t    care.CareType
		kind string
	)
	err := r.s.queryRow(ctx, `
		SELECT id, kind, name, active FROM care_types WHERE id = $1
	`, strings.TrimSpace(id)).Scan(&t.ID, &kind, &t.Name, &t.Active)
	if errors.Is(err, sql.ErrNoRows) {
		return care.CareType{}, care.ErrTypeNotFound
	}
	if err != nil {
		return care.CareType{}, err
	}
	t.Kind = care.Kind(kind)
	return t, nil
}

func (r *CareRepo) ListTypes(ctx context.Context) ([]care.CareType, error) {
	rows, err := r.s.query(ctx, `SELECT id, kind, name, active FROM care_types ORDER BY kind, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]care.CareType, 0)
	for rows.Next() {
		var (
			t    care.CareType
			kind string
		)
		if err := rows.Scan(&t.ID, &kind, &t.Name, &t.Active); err != nil {
			return nil, err
		}
		t.Kind = care.Kind(kind)
		out = append(out, t)
	}
	return out, rows.Err()
}
