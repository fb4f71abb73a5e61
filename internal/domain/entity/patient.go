package entity

// Patient is the profile fetched for a logged-in patient, used only as
// input to the booking overlay. The portal never mutates it.
type Patient struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
}
