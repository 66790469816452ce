package commands

import (
	"errors"

	"levaai/internal/core/domain/model/kernel"
	"levaai/internal/core/domain/model/order"
	"levaai/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand requests one lifecycle step on behalf of a user:
// claim (accepted), pickup, transit, delivery or cancellation.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	newStatus    order.Status
	actingUserID kernel.UserID

	guard guard.ConstructorGuard
}

func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	newStatus order.Status,
	actingUserID kernel.UserID,
) (UpdateOrderStatusCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		newStatus.Validate(),
		actingUserID.Validate(),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		orderID:      orderID,
		newStatus:    newStatus,
		actingUserID: actingUserID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) OrderID() kernel.UUID        { return c.orderID }
func (c UpdateOrderStatusCommand) NewStatus() order.Status     { return c.newStatus }
func (c UpdateOrderStatusCommand) ActingUserID() kernel.UserID { return c.actingUserID }
