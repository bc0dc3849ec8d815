package entity

// Session identifies the acting user for the duration of a login. It is
// created at login, carried through every operation that needs the
// caller's identity, and discarded at logout.
type Session struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

func (s Session) IsAgent() bool {
	return s.Role == RoleAgent
}
