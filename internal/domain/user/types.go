package user

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleHost   Role = "HOST"
	RoleDriver Role = "DRIVER"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleHost, RoleDriver:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Actor is the authenticated principal every lifecycle operation receives.
// Permission checks are capability predicates on it, never ambient state.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func (a Actor) IsDriver() bool { return a.Role == RoleDriver }
func (a Actor) IsHost() bool   { return a.Role == RoleHost }
