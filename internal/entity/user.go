package entity

// User roles.
const (
	RoleAdmin      = "admin"
	RoleAgent      = "agent"
	RoleTeamLeader = "team_leader"
)

var Roles = []string{RoleAdmin, RoleAgent, RoleTeamLeader}

// User is one account in the credential file, keyed by username.
// Password holds either a bcrypt hash (accounts written by this system)
// or a legacy plaintext value (hand-edited or seed files).
type User struct {
	Password string `json:"password"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
}

func IsValidRole(r string) bool {
	for _, role := range Roles {
		if role == r {
			return true
		}
	}
	return false
}

// SeedUsers is the fallback credential set used when the credential file
// is absent or unreadable. Without it a fresh install would have no way
// to log in.
func SeedUsers() map[string]User {
	return map[string]User{
		"admin": {Password: "admin", Role: RoleAdmin, Active: true},
	}
}
