package render

import "clinic-portal/internal/domain/entity"

// CardAction is the single role-dependent action a doctor card exposes.
type CardAction string

const (
	CardActionNone        CardAction = ""
	CardActionDelete      CardAction = "delete"
	CardActionPromptLogin CardAction = "prompt-login"
	CardActionBook        CardAction = "book"
)

var cardActionByRole = map[entity.Role]CardAction{
	entity.RoleAdmin:         CardActionDelete,
	entity.RolePatient:       CardActionPromptLogin,
	entity.RoleLoggedPatient: CardActionBook,
}

// DoctorCard pairs a doctor with the action the current role may take
// on it.
type DoctorCard struct {
	entity.Doctor
	Action CardAction
}

// DoctorCards maps a doctor list to cards for the given role. Pure
// function: same input, same cards.
func DoctorCards(doctors []entity.Doctor, role entity.Role) []DoctorCard {
	action := cardActionByRole[role]
	cards := make([]DoctorCard, 0, len(doctors))
	for _, doctor := range doctors {
		cards = append(cards, DoctorCard{Doctor: doctor, Action: action})
	}
	return cards
}
