package models

import "time"

// Tenant is a university. Code never changes once assigned.
// A zero limit means the tenant is not capped for that role.
type Tenant struct {
	Code           string
	Name           string
	MaxStudents    int
	MaxSupervisors int
	CreatedAt      time.Time
}

// LimitFor returns the capacity limit that applies to role, or 0 when none does.
func (t *Tenant) LimitFor(role Role) int {
	switch role {
	case RoleStudent:
		return t.MaxStudents
	case RoleSupervisor:
		return t.MaxSupervisors
	}
	return 0
}
