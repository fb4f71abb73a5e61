package dto

// BookingForm is the slot selection posted from the booking overlay.
type BookingForm struct {
	Date string `validate:"required"`
	Time string `validate:"required"`
}
