package entity

// Appointment is a backend appointment record rendered as one table
// row on the doctor dashboard. The portal treats it as an opaque
// record keyed by date and an optional patient-name filter.
type Appointment struct {
	ID           int64  `json:"id"`
	PatientName  string `json:"patient_name"`
	PatientPhone string `json:"patient_phone"`
	PatientEmail string `json:"patient_email"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Status       string `json:"status"`
}
