package commands

import (
	"context"
	"errors"

	"levaai/internal/core/domain/model/order"
	"levaai/internal/core/domain/model/session"
	"levaai/internal/core/domain/services"
	"levaai/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler is the order lifecycle controller. The whole
// read-check-write runs inside one unit of work, so two drivers claiming the
// same order are serialised and exactly one wins.
//
// Example:
//
//	cmd, _ := NewUpdateOrderStatusCommand(orderID, order.Accepted, driverID)
//	o, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrAlreadyClaimed):
//	    // someone else was faster
//	case errors.Is(err, session.ErrRegistrationRequired):
//	    // route to the registration flow
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	claimer    services.OrderClaimer
}

func NewUpdateOrderStatusCommandHandler(uowFactory UoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		claimer:    services.NewOrderClaimer(),
	}
}

// Handle returns the updated order. On any error nothing is stored.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if cmd.NewStatus() == order.Accepted {
		err = h.claim(ctx, uow, o, cmd)
	} else {
		err = o.TransitionTo(cmd.NewStatus(), cmd.ActingUserID())
	}
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

func (h UpdateOrderStatusCommandHandler) claim(ctx context.Context, uow UoW, o *order.Order, cmd UpdateOrderStatusCommand) error {
	// a claim on an order that is no longer pending fails the same way for everyone
	if o.Status() != order.Pending {
		return o.Accept(cmd.ActingUserID())
	}

	driver, err := uow.UserRepository().Get(ctx, cmd.ActingUserID())
	if err != nil {
		return err
	}

	sess, err := uow.SessionRepository().Get(ctx, cmd.ActingUserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		sess, err = session.NewSession(cmd.ActingUserID())
	}
	if err != nil {
		return err
	}

	return h.claimer.Claim(o, driver, sess)
}
