package commands

import (
	"errors"

	"levaai/internal/core/domain/model/kernel"
	"levaai/internal/core/domain/model/user"
	"levaai/internal/pkg/guard"
)

var ErrRegisterDriverCommandIsNotConstructed = errors.New(
	"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
)

// RegisterDriverCommand submits driver documents for verification.
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	userID  kernel.UserID
	details user.DriverDetails

	guard guard.ConstructorGuard
}

func NewRegisterDriverCommand(userID kernel.UserID, details user.DriverDetails) (RegisterDriverCommand, error) {
	if err := errors.Join(userID.Validate(), details.Validate()); err != nil {
		return RegisterDriverCommand{}, err
	}
	return RegisterDriverCommand{userID: userID, details: details, guard: guard.NewConstructorGuard()}, nil
}

func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

func (c RegisterDriverCommand) UserID() kernel.UserID       { return c.userID }
func (c RegisterDriverCommand) Details() user.DriverDetails { return c.details }
