// Package models defines server-side data models persisted in the database.
package models

type Role string

const (
	RoleStudent         Role = "student"
	RoleSupervisor      Role = "supervisor"
	RoleUniversityAdmin Role = "university_admin"
	RoleSystemAdmin     Role = "system_admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleSupervisor, RoleUniversityAdmin, RoleSystemAdmin:
		return true
	}
	return false
}

// IsGlobal reports whether the role lives outside any tenant.
func (r Role) IsGlobal() bool {
	return r == RoleSystemAdmin
}

// IsAdmin reports whether usernames for the role share one global namespace.
func (r Role) IsAdmin() bool {
	return r == RoleUniversityAdmin || r == RoleSystemAdmin
}
