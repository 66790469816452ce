// Package session tracks the mode a user is acting in. A user's identity
// carries an advisory role, but whether the app shows the sender or the
// driver side is session state that flips through RequestToggleRole.
package session

import (
	"errors"

	"levaai/internal/core/domain/model/kernel"
)

var (
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")

	// ErrRegistrationRequired is returned when an unverified user tries to
	// enter driver mode or act as a driver. Callers route to registration.
	ErrRegistrationRequired = errors.New("driver registration is required")

	// ErrDriverModeRequired is returned when a verified driver acts as a
	// driver while the session is in sender mode.
	ErrDriverModeRequired = errors.New("switch to driver mode first")
)

// Decision is the outcome of a role toggle request.
type Decision int

const (
	Toggle Decision = iota + 1
	RequireRegistration
)

func (d Decision) String() string {
	switch d {
	case Toggle:
		return "toggle"
	case RequireRegistration:
		return "require_registration"
	default:
		return "unknown"
	}
}

// RequestToggleRole decides what a tap on the role switch does. Leaving driver
// mode is always allowed; entering it needs a verified driver.
func RequestToggleRole(currentlyDriverMode, isVerified bool) Decision {
	if !currentlyDriverMode && !isVerified {
		return RequireRegistration
	}
	return Toggle
}

type Session struct {
	userID         kernel.UserID
	actingAsDriver bool

	isConstructed bool
}

// NewSession starts a user in sender mode.
func NewSession(userID kernel.UserID) (*Session, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	return &Session{userID: userID, isConstructed: true}, nil
}

func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

func (s *Session) Clone() *Session {
	c := *s
	return &c
}

func (s *Session) UserID() kernel.UserID {
	return s.userID
}

func (s *Session) ActingAsDriver() bool {
	return s.actingAsDriver
}

// ToggleRole applies RequestToggleRole. A RequireRegistration decision leaves
// the session unchanged and is reported as ErrRegistrationRequired.
func (s *Session) ToggleRole(isVerified bool) (Decision, error) {
	d := RequestToggleRole(s.actingAsDriver, isVerified)
	if d == RequireRegistration {
		return d, ErrRegistrationRequired
	}
	s.actingAsDriver = !s.actingAsDriver
	return d, nil
}

// EnsureCanDrive reports whether the user may claim orders right now.
func (s *Session) EnsureCanDrive(isVerified bool) error {
	if !isVerified {
		return ErrRegistrationRequired
	}
	if !s.actingAsDriver {
		return ErrDriverModeRequired
	}
	return nil
}
