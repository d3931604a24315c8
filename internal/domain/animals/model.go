package animals

import "time"

// Status es el estado administrativo del animal en el refugio.
// @Enum normal, adopted, deceased, foster, other
type Status string

const (
	StatusNormal   Status = "normal"
	StatusAdopted  Status = "adopted"
	StatusDeceased Status = "deceased"
	StatusFoster   Status = "foster" // en familia de acogida
	StatusOther    Status = "other"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNormal, StatusAdopted, StatusDeceased, StatusFoster, StatusOther:
		return true
	}
	return false
}

// Species: el refugio es felino, otras especies solo se cuentan aparte en los reportes.
type Species string

const (
	SpeciesCat   Species = "cat"
	SpeciesDog   Species = "dog"
	SpeciesOther Species = "other"
)

type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

type Animal struct {
	ID string

	Name      string
	Species   Species
	Sex       Sex
	BirthDate *time.Time
	Microchip string

	Status Status

	EntryDate   *time.Time
	EntryReason string
	ExitDate    *time.Time
	ExitReason  string

	PhotoFilename string
	Notes         string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsResident: sin fecha de salida (o en acogida) y no adoptado/fallecido.
// Se toman los campos tal cual, sin "reparar" estados contradictorios.
func (a Animal) IsResident() bool {
	if a.Status == StatusAdopted || a.Status == StatusDeceased {
		return false
	}
	return a.ExitDate == nil || a.Status == StatusFoster
}
