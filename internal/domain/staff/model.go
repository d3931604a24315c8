package staff

import "time"

type Role string

const (
	RoleEmployee     Role = "employee"
	RoleVeterinarian Role = "veterinarian"
)

func (r Role) Valid() bool {
	return r == RoleEmployee || r == RoleVeterinarian
}

// Member es un empleado o veterinario. La baja es lógica (Active=false) para
// no romper citas históricas.
type Member struct {
	ID     string
	Name   string
	Role   Role
	Phone  string
	Email  string
	Active bool

	CreatedAt time.Time
}
