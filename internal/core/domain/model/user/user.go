package user

import (
	"errors"
	"net/mail"
	"strings"

	"levaai/internal/core/domain/model/kernel"
	"levaai/internal/pkg/errs"
)

// Rating bounds, inclusive.
const (
	RatingMin = 0.0
	RatingMax = 5.0
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through the NewUser factory method.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrDriverAlreadyVerified is returned when a verified driver registers again.
	ErrDriverAlreadyVerified = errors.New("driver is already verified")
)

// User is a marketplace participant. One user may send and drive.
//
// User follows these invariants:
//   - id never changes after construction
//   - the name is never blank
//   - the rating stays within [RatingMin, RatingMax]
//   - driverDetails is set exactly when the user is a verified driver
type User struct {
	// id is the opaque user identifier, e.g. "u1"
	id kernel.UserID

	// name is the display name, replaced by the registered full name
	name string

	// email is optional; when present it is a valid address
	email string

	// role is the stored profile role
	role Role

	rating  float64
	balance kernel.Money

	// isDriverVerified flips once, on a successful registration
	isDriverVerified bool
	driverDetails    *DriverDetails

	// isConstructed ensures the user was created via NewUser
	isConstructed bool
}

// NewUser creates an unverified user without driver details.
//
// Parameters:
//   - id: The user identifier (must not be blank)
//   - name: Display name (must not be blank, trimmed)
//   - email: Optional address; a non-blank value must parse
//   - role: Sender or Driver
//   - rating: Between RatingMin and RatingMax
//   - balance: Wallet balance
//
// Returns:
//   - *User: The created user if all validations pass
//   - error: Every validation failure, joined
//
// Example:
//
//	u, err := user.NewUser(kernel.MustUserID("u1"), "Bruno Silva", "bruno@example.com",
//	    user.Sender, 4.8, kernel.MustMoney("150.00"))
//	if err != nil {
//	    // Handle validation error
//	}
func NewUser(id kernel.UserID, name, email string, role Role, rating float64, balance kernel.Money) (*User, error) {
	u := &User{isConstructed: true}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setRole(role),
		u.setRating(rating),
		u.setBalance(balance),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User was built through NewUser.
//
// Returns:
//   - nil if the user is valid
//   - ErrUserIsNotConstructed for a nil or zero-value user
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// Clone returns an independent copy, driver details included.
func (u *User) Clone() *User {
	c := *u
	if u.driverDetails != nil {
		d := *u.driverDetails
		c.driverDetails = &d
	}
	return &c
}

// ID returns the user's identifier.
func (u *User) ID() kernel.UserID { return u.id }

// Name returns the display name.
func (u *User) Name() string { return u.name }

// Email returns the address, empty when none was given.
func (u *User) Email() string { return u.email }

// Role returns the stored profile role. The acting role of a request lives
// in the session.
func (u *User) Role() Role { return u.role }

func (u *User) Rating() float64       { return u.rating }
func (u *User) Balance() kernel.Money { return u.balance }

// IsDriverVerified reports whether the user completed driver registration.
func (u *User) IsDriverVerified() bool { return u.isDriverVerified }

// DriverDetails returns a copy of the registered details.
// Returns nil for unverified users.
func (u *User) DriverDetails() *DriverDetails {
	if u.driverDetails == nil {
		return nil
	}
	d := *u.driverDetails
	return &d
}

// CompleteDriverRegistration marks the user verified and attaches details.
//
// This method enforces the following business rules:
//   - The details must come from NewDriverDetails
//   - A user is verified at most once
//   - The registered full name replaces the profile name
//
// Parameters:
//   - details: The approved driver details
//
// Returns:
//   - nil on success
//   - ErrDriverAlreadyVerified if the user is already verified
//   - the details' validation error if they were not constructed
//
// Example:
//
//	if err := u.CompleteDriverRegistration(details); err != nil {
//	    // Nothing was changed
//	}
//
// It does not switch the session into driver mode.
func (u *User) CompleteDriverRegistration(details DriverDetails) error {
	if err := details.Validate(); err != nil {
		return err
	}
	if u.isDriverVerified {
		return ErrDriverAlreadyVerified
	}

	d := details
	u.driverDetails = &d
	u.isDriverVerified = true
	if name := details.FullName(); name != "" {
		u.name = name
	}
	return nil
}

func (u *User) setID(id kernel.UserID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	n := strings.TrimSpace(name)
	if n == "" {
		return ErrNameIsRequired
	}
	u.name = n
	return nil
}

func (u *User) setEmail(email string) error {
	e := strings.TrimSpace(email)
	if e == "" {
		u.email = ""
		return nil
	}
	if _, err := mail.ParseAddress(e); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	u.email = e
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setRating(rating float64) error {
	if rating < RatingMin || rating > RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, RatingMin, RatingMax)
	}
	u.rating = rating
	return nil
}

func (u *User) setBalance(balance kernel.Money) error {
	if err := balance.Validate(); err != nil {
		return err
	}
	u.balance = balance
	return nil
}
