package entity

import "strings"

// Doctor is a transient copy of a backend doctor record, held only for
// the duration of one render cycle.
type Doctor struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Specialty    string   `json:"specialty"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone,omitempty"`
	Availability []string `json:"availability"`
}

// AvailabilityLabel joins the doctor's time-slot labels for display.
func (d Doctor) AvailabilityLabel() string {
	return strings.Join(d.Availability, ", ")
}

// DoctorFilter carries the optional search inputs of the doctor list.
// Empty fields are omitted from the backend query entirely.
type DoctorFilter struct {
	Name      string
	Time      string
	Specialty string
}

// IsZero reports whether no filter input is set, in which case the
// unfiltered list is requested.
func (f DoctorFilter) IsZero() bool {
	return f.Name == "" && f.Time == "" && f.Specialty == ""
}
