package domain

import "fmt"

// Role is the closed set of account roles. Only HR and CANDIDATE can be
// self-selected at registration; ADMIN accounts are provisioned out of band.
type Role string

const (
	RoleHR        Role = "HR"
	RoleCandidate Role = "CANDIDATE"
	RoleAdmin     Role = "ADMIN"
)

// ParseRole converts a raw string into a Role, rejecting anything outside the
// closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleHR, RoleCandidate, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("%w: unknown role %q", ErrValidation, s)
}

// Registrable reports whether the role may be self-selected at signup.
func (r Role) Registrable() bool {
	return r == RoleHR || r == RoleCandidate
}

func (r Role) String() string {
	return string(r)
}
