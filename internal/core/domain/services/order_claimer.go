package services

import (
	"levaai/internal/core/domain/model/order"
	"levaai/internal/core/domain/model/session"
	"levaai/internal/core/domain/model/user"
)

// OrderClaimer lets a driver commit to a pending order.
//
// Business rules:
//   - the driver must be verified (session.ErrRegistrationRequired)
//   - the session must be in driver mode (session.ErrDriverModeRequired)
//   - a user may claim an order they sent, as the single demo user does
//   - the order must still be pending; a claimed order fails with
//     order.ErrAlreadyClaimed wrapped in an InvalidTransition
//
// Example usage:
//
//	claimer := services.NewOrderClaimer()
//	if err := claimer.Claim(o, driver, sess); err != nil {
//	    return err
//	}
type OrderClaimer struct{}

func NewOrderClaimer() OrderClaimer {
	return OrderClaimer{}
}

// Claim checks eligibility and accepts the order on behalf of driver. The order
// is unchanged when an error is returned.
func (OrderClaimer) Claim(o *order.Order, driver *user.User, sess *session.Session) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := driver.Validate(); err != nil {
		return err
	}
	if err := sess.Validate(); err != nil {
		return err
	}
	if !sess.UserID().IsEqual(driver.ID()) {
		return order.ErrActorIsNotAllowed
	}

	if err := sess.EnsureCanDrive(driver.IsDriverVerified()); err != nil {
		return err
	}
	return o.Accept(driver.ID())
}
