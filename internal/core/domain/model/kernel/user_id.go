package kernel

import (
	"strings"

	"levaai/internal/pkg/errs"
)

// ErrUserIDIsRequired is returned for a blank user identifier.
var ErrUserIDIsRequired = errs.NewValueIsRequiredError("user id")

// UserID is the opaque identifier of a marketplace user ("u1" for the demo user).
// Orders reference their sender and driver through it.
type UserID struct {
	value string
}

// NewUserID trims surrounding whitespace and rejects blank identifiers.
func NewUserID(value string) (UserID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return UserID{}, ErrUserIDIsRequired
	}
	return UserID{value: value}, nil
}

// MustUserID is NewUserID for literals known to be valid; it panics otherwise.
func MustUserID(value string) UserID {
	id, err := NewUserID(value)
	if err != nil {
		panic(err)
	}
	return id
}

func (u UserID) String() string {
	return u.value
}

func (u UserID) IsEqual(other UserID) bool {
	return u.value == other.value
}

// Validate rejects the zero value.
func (u UserID) Validate() error {
	if u.value == "" {
		return ErrUserIDIsRequired
	}
	return nil
}
