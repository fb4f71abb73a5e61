package dto

// Login forms posted from the home page. Admin authenticates with a
// username, doctors and patients with an email.

type AdminLoginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type DoctorLoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type PatientLoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}
