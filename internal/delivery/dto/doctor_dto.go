package dto

// AddDoctorForm is the admin dashboard's add-doctor form.
type AddDoctorForm struct {
	Name         string   `validate:"required,min=2"`
	Specialty    string   `validate:"required"`
	Email        string   `validate:"required,email"`
	Password     string   `validate:"required,min=6"`
	Mobile       string   `validate:"required"`
	Availability []string `validate:"required,min=1,dive,required"`
}
