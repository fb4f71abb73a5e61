package entity

// Session is the portal's view of one browser session. The backend
// token is opaque here; the portal only stores and forwards it.
type Session struct {
	ID    string `json:"id"`
	Role  Role   `json:"role"`
	Token string `json:"token,omitempty"`
}

// Anonymous is the zero session handed out when no valid record exists.
func Anonymous() Session {
	return Session{Role: RoleAnonymous}
}

// Authenticated reports whether the session's role requires a token.
func (s Session) Authenticated() bool {
	return s.Role.RequiresToken()
}

// Expired reports the invalid-session condition: an authenticated role
// persisted without its token. Such a record must be destroyed and the
// user sent back to the home page.
func (s Session) Expired() bool {
	return s.Role.RequiresToken() && s.Token == ""
}
