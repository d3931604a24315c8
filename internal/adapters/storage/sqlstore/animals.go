package sqlstore

import (
	"context"
	"database/sql"
	"strings"

	"cat-shelter-admin/internal/domain/animals"
)

type AnimalsRepo struct {
	s *Store
}

func (s *Store) Animals() *AnimalsRepo { return &AnimalsRepo{s: s} }

const animalColumns = `
	id, name, species, sex, birth_date, microchip, status,
	entry_date, entry_reason, exit_date, exit_reason,
	photo_filename, notes, created_at, updated_at`

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	_, err := r.s.exec(ctx, `
		INSERT INTO animals (`+animalColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		a.ID,
		a.Name,
		string(a.Species),
		string(a.Sex),
		toNullDate(a.BirthDate),
		a.Microchip,
		string(a.Status),
		toNullDate(a.EntryDate),
		a.EntryReason,
		toNullDate(a.ExitDate),
		a.ExitReason,
		a.PhotoFilename,
		a.Notes,
		a.CreatedAt.UTC(),
		a.UpdatedAt.UTC(),
	)
	return err
}

func (r *AnimalsRepo) Update(ctx context.Context, a animals.Animal) error {
	res, err := r.s.exec(ctx, `
		UPDATE animals
		SET
			name = $1,
			species = $2,
			sex = $3,
			birth_date = $4,
			microchip = $5,
			status = $6,
			entry_date = $7,
			entry_reason = $8,
			exit_date = $9,
			exit_reason = $10,
			photo_filename = $11,
			notes = $12,
			updated_at = $13
		WHERE id = $14
	`,
		a.Name,
		string(a.Species),
		string(a.Sex),
		toNullDate(a.BirthDate),
		a.Microchip,
		string(a.Status),
		toNullDate(a.EntryDate),
		a.EntryReason,
		toNullDate(a.ExitDate),
		a.ExitReason,
		a.PhotoFilename,
		a.Notes,
		a.UpdatedAt.UTC(),
		a.ID,
	)
	if err != nil {
		return err
	}
	return expectOne(res, animals.ErrNotFound)
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return animals.Animal{}, animals.ErrNotFound
	}

	row := r.s.queryRow(ctx, `SELECT `+animalColumns+` FROM animals WHERE id = $1`, id)
	a, err := scanAnimal(row)
	if err != nil {
		return animals.Animal{}, notFoundOr(err, animals.ErrNotFound)
	}
	return a, nil
}

// List filtra status/species en SQL; el texto se filtra en Go porque LOWER()
// de SQLite solo pliega ASCII.
func (r *AnimalsRepo) List(ctx context.Context, filter animals.ListFilter) ([]animals.Animal, error) {
	where := make([]string, 0, 3)
	args := make([]any, 0, 2)
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		where = append(where, "status = $"+itoa(len(args)))
	}
	if filter.Species != "" {
		args = append(args, string(filter.Species))
		where = append(where, "species = $"+itoa(len(args)))
	}
	if filter.ResidentOnly {
		where = append(where, "status NOT IN ('adopted','deceased') AND (exit_date IS NULL OR status = 'foster')")
	}

	q := `SELECT ` + animalColumns + ` FROM animals`
	if len(where) > 0 {
		q += ` WHERE ` + strings.Join(where, " AND ")
	}
	q += ` ORDER BY name ASC, id ASC`

	rows, err := r.s.query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		if filter.Match(a) {
			out = append(out, a)
		}
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAnimal(sc scanner) (animals.Animal, error) {
	var (
		a                 animals.Animal
		species, sex, st  string
		birth, entry, ext sql.NullTime
	)
	if err := sc.Scan(
		&a.ID,
		&a.Name,
		&species,
		&sex,
		&birth,
		&a.Microchip,
		&st,
		&entry,
		&a.EntryReason,
		&ext,
		&a.ExitReason,
		&a.PhotoFilename,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return animals.Animal{}, err
	}
	a.Species = animals.Species(species)
	a.Sex = animals.Sex(sex)
	a.Status = animals.Status(st)
	a.BirthDate = fromNullDate(birth)
	a.EntryDate = fromNullDate(entry)
	a.ExitDate = fromNullDate(ext)
	a.CreatedAt = a.CreatedAt.UTC()
	a.UpdatedAt = a.UpdatedAt.UTC()
	return a, nil
}
