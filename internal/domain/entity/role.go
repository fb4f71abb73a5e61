package entity

// Role determines which pages a session may reach and which actions
// its rendered views expose.
type Role string

const (
	RoleAnonymous     Role = "anonymous"
	RolePatient       Role = "patient"
	RoleLoggedPatient Role = "loggedPatient"
	RoleDoctor        Role = "doctor"
	RoleAdmin         Role = "admin"
)

// RequiresToken reports whether a session holding this role must also
// hold a backend bearer token.
func (r Role) RequiresToken() bool {
	switch r {
	case RoleLoggedPatient, RoleDoctor, RoleAdmin:
		return true
	}
	return false
}

// ParseRole maps a stored role string back to a Role. Unknown values
// resolve to RoleAnonymous so a corrupted record never grants access.
func ParseRole(s string) Role {
	switch Role(s) {
	case RolePatient, RoleLoggedPatient, RoleDoctor, RoleAdmin:
		return Role(s)
	}
	return RoleAnonymous
}
