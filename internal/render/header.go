package render

import "clinic-portal/internal/domain/entity"

// NavAction is one entry of the role-conditional header. Post actions
// render as single-button forms, the rest as links.
type NavAction struct {
	Label string
	Href  string
	Post  bool
}

// navByRole is the header contents per role. A lookup table, not
// branching, so every component shares one source of truth.
var navByRole = map[entity.Role][]NavAction{
	entity.RoleAnonymous: {
		{Label: "Admin Login", Href: "/#admin-login"},
		{Label: "Doctor Login", Href: "/#doctor-login"},
		{Label: "Patient Portal", Href: "/patientDashboard"},
	},
	entity.RolePatient: {
		{Label: "Login", Href: "/#patient-login"},
		{Label: "Sign Up", Href: "/#patient-signup"},
	},
	entity.RoleLoggedPatient: {
		{Label: "Home", Href: "/patientDashboard"},
		{Label: "Appointments", Href: "/patient/appointments"},
		{Label: "Logout", Href: "/logout", Post: true},
	},
	entity.RoleDoctor: {
		{Label: "Home", Href: "/doctorDashboard"},
		{Label: "Logout", Href: "/logout", Post: true},
	},
	entity.RoleAdmin: {
		{Label: "Add Doctor", Href: "/adminDashboard#add-doctor"},
		{Label: "Logout", Href: "/logout", Post: true},
	},
}

// Nav returns the header actions for the session's role. Pure function
// of the session; it never mutates state itself.
func Nav(sess entity.Session) []NavAction {
	if actions, ok := navByRole[sess.Role]; ok {
		return actions
	}
	return navByRole[entity.RoleAnonymous]
}
