package commands

import (
	"errors"

	"levaai/internal/core/domain/model/kernel"
	"levaai/internal/pkg/guard"
)

var ErrToggleRoleCommandIsNotConstructed = errors.New(
	"ToggleRoleCommand must be created via NewToggleRoleCommand constructor",
)

// ToggleRoleCommand flips a user between sender and driver mode.
type ToggleRoleCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UserID

	guard guard.ConstructorGuard
}

func NewToggleRoleCommand(userID kernel.UserID) (ToggleRoleCommand, error) {
	if err := userID.Validate(); err != nil {
		return ToggleRoleCommand{}, err
	}
	return ToggleRoleCommand{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (c ToggleRoleCommand) Validate() error {
	return c.guard.Validate(ErrToggleRoleCommandIsNotConstructed)
}

func (c ToggleRoleCommand) UserID() kernel.UserID {
	return c.userID
}
