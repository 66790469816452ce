package user

import (
	"fmt"
	"strings"

	"levaai/internal/pkg/errs"
)

// Role is the advisory role stored on the profile. The mode a user is acting
// in lives in the session, not here.
type Role int

const (
	RoleUnknown Role = iota
	Sender
	Driver
)

var roleNames = map[Role]string{
	Sender: "sender",
	Driver: "driver",
}

func ParseRole(name string) (Role, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for r, s := range roleNames {
		if s == n {
			return r, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a role", name))
}

func (r Role) Validate() error {
	if _, ok := roleNames[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", int(r)))
	}
	return nil
}

func (r Role) String() string {
	if n, ok := roleNames[r]; ok {
		return n
	}
	return "unknown"
}
