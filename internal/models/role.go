package models

// Role identifies the account variant a record or token belongs to.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
	RoleFaculty    Role = "faculty"
	RoleStudent    Role = "student"
)

// Valid reports whether the role is one of the known values. Checked at
// record creation and again when a token is decoded.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSuperAdmin, RoleFaculty, RoleStudent:
		return true
	}
	return false
}

// IsAdmin reports whether the role grants admin-level access.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}
