package tasks

import "time"

// Task es un cuidado recurrente (limpieza de cajas, cepillado, ...) cada IntervalDays.
type Task struct {
	ID           string
	Title        string
	IntervalDays int
	LastDoneAt   *time.Time
	AssigneeID   string
	Active       bool

	CreatedAt time.Time
}
