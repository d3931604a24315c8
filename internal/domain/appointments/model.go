package appointments

import "time"

// DefaultLocation se usa cuando la cita no indica lugar.
const DefaultLocation = "Rendez-vous"

type Appointment struct {
	ID       string
	At       time.Time
	Location string

	AnimalIDs []string
	StaffIDs  []string

	Notes     string
	CreatedAt time.Time
}

// CalendarEntry es el formato del feed de calendario.
type CalendarEntry struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Start time.Time `json:"start"`
}
