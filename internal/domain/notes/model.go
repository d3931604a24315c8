package notes

import "time"

// Note es una observación libre del personal sobre un animal.
type Note struct {
	ID        string
	AnimalID  string
	Content   string
	CreatedAt time.Time
}
