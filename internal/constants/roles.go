package constants

import "fmt"

// Role is the caller role carried in the bearer token
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Stringer, for fmt / logs
func (r Role) String() string { return string(r) }

// Rank orders roles so capability checks can compare a minimum.
// Unknown roles rank below every known role.
func (r Role) Rank() int {
	switch r {
	case RoleUser:
		return 1
	case RoleAdmin:
		return 2
	default:
		return 0
	}
}

func (r Role) Valid() bool { return r.Rank() > 0 }

// ParseRole accepts "user" / "admin" case-sensitively
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}
