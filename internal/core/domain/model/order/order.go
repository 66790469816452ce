package order

import (
	"errors"
	"time"

	"levaai/internal/core/domain/model/kernel"
	"levaai/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrAlreadyClaimed is the cause of the InvalidTransition returned when a driver
	// tries to claim an order another driver (or the same one) already holds.
	ErrAlreadyClaimed = errors.New("order is already claimed")

	// ErrActorIsNotAllowed is returned when the acting user is not a participant
	// allowed to perform the requested transition.
	ErrActorIsNotAllowed = errors.New("acting user is not allowed to change this order")

	ErrCreatedAtIsRequired = errs.NewValueIsRequiredError("createdAt")
)

// Order is a single requested shipment from a sender to a recipient address,
// priced at creation and tracked through its delivery lifecycle.
//
// Order follows these invariants:
//   - id, senderID, price and createdAt never change after construction
//   - driverID is nil while pending and set exactly once by the claim
//   - status only moves along the transition table in status.go
//   - a method that returns an error has not modified the order
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// senderID is the user who requested the shipment
	senderID kernel.UserID

	// driverID is the claiming driver (nil while pending)
	driverID *kernel.UserID

	// shipment holds the addresses and the parcel description
	shipment Shipment

	// price is copied from the quote at creation and is always positive
	price kernel.Money

	// status is the current step of the delivery lifecycle
	status Status

	// createdAt is the instant the sender confirmed the order
	createdAt time.Time

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates a pending order with no driver. This is the only way to
// start a new order; RestoreOrder builds on it for orders in later statuses.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//   - senderID: The user requesting the shipment
//   - shipment: Addresses and parcel description, built with NewShipment
//   - price: The quoted price (must be greater than 0)
//   - createdAt: Creation instant (must not be zero)
//
// Returns:
//   - *Order: The pending order if all validations pass
//   - error: Every validation failure, joined
//
// Example:
//
//	shipment, _ := order.NewShipment("Av. Paulista, 1000", "Rua Augusta, 500", "Documentos", "", "", "")
//	o, err := order.NewOrder(kernel.NewUUID(), sender, shipment, kernel.MustMoney("18.50"), time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	senderID kernel.UserID,
	shipment Shipment,
	price kernel.Money,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setSenderID(senderID),
		o.setShipment(shipment),
		o.setPrice(price),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order in any status, e.g. for seed data. The
// status/driver pair must be consistent: pending orders have no driver, every
// other status except a cancelled-while-pending order has one.
func RestoreOrder(
	id kernel.UUID,
	senderID kernel.UserID,
	shipment Shipment,
	price kernel.Money,
	createdAt time.Time,
	status Status,
	driverID *kernel.UserID,
) (*Order, error) {
	o, err := NewOrder(id, senderID, shipment, price, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = validateDriverForStatus(status, driverID); err != nil {
		return nil, err
	}

	o.status = status
	if driverID != nil {
		d := *driverID
		o.driverID = &d
	}
	return o, nil
}

// Validate ensures the Order was built through a constructor.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed for a nil or zero-value order
//
// Repositories call it before storing an aggregate.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// Clone returns an independent copy, used by the store to hand out snapshots
// and to stage changes that may be rolled back.
func (o *Order) Clone() *Order {
	c := *o
	if o.driverID != nil {
		d := *o.driverID
		c.driverID = &d
	}
	return &c
}

// IsEqual compares two orders by their unique identifiers.
//
// Parameters:
//   - other: The order to compare with
//
// Returns:
//   - true if both orders have the same ID
//   - false if other is nil or the IDs differ
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// SenderID returns the user who created the order.
func (o *Order) SenderID() kernel.UserID {
	return o.senderID
}

// DriverID returns the claiming driver.
// Returns nil while the order is unclaimed. The result is a copy.
func (o *Order) DriverID() *kernel.UserID {
	if o.driverID == nil {
		return nil
	}
	d := *o.driverID
	return &d
}

// Shipment returns the addresses and parcel description.
func (o *Order) Shipment() Shipment {
	return o.shipment
}

// Price returns the price fixed when the order was created.
func (o *Order) Price() kernel.Money {
	return o.price
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the instant the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Accept is the claim: a pending order becomes accepted and remembers driverID.
//
// This method enforces the following business rules:
//   - The order must be pending
//   - An order that already has a driver cannot be claimed again, not even by
//     the same driver
//
// Parameters:
//   - driverID: The driver claiming the order
//
// Returns:
//   - nil on a successful claim
//   - a TransitionIsInvalidError whose cause is ErrAlreadyClaimed when the
//     order already has a driver
//   - a TransitionIsInvalidError for any other non-pending order
//
// Example:
//
//	if err := o.Accept(driverID); errors.Is(err, order.ErrAlreadyClaimed) {
//	    // Another driver was faster
//	}
func (o *Order) Accept(driverID kernel.UserID) error {
	return o.TransitionTo(Accepted, driverID)
}

// PickUp moves an accepted order to picked_up. Only the assigned driver may do it.
func (o *Order) PickUp(actor kernel.UserID) error {
	return o.TransitionTo(PickedUp, actor)
}

// StartTransit marks the parcel as collected and on its way.
func (o *Order) StartTransit(actor kernel.UserID) error {
	return o.TransitionTo(InTransit, actor)
}

// Deliver completes an in-transit order. Delivered is final.
//
// Returns:
//   - nil on success
//   - a TransitionIsInvalidError unless the order is in transit
//   - ErrActorIsNotAllowed when actor is not the assigned driver
func (o *Order) Deliver(actor kernel.UserID) error {
	return o.TransitionTo(Delivered, actor)
}

// Cancel is allowed before pickup, for the sender or the assigned driver.
// Cancelled is final.
//
// Parameters:
//   - actor: The sender or the assigned driver
//
// Returns:
//   - nil on success
//   - a TransitionIsInvalidError once the parcel was picked up
//   - ErrActorIsNotAllowed for any other user
func (o *Order) Cancel(actor kernel.UserID) error {
	return o.TransitionTo(Cancelled, actor)
}

// TransitionTo applies one step of the lifecycle on behalf of actor.
//
// Checks run in this order and stop at the first failure:
//   - the transition table (InvalidTransition, or AlreadyClaimed for a second claim)
//   - who may perform it (ErrActorIsNotAllowed)
//
// On the first transition out of pending into accepted the actor becomes the driver.
func (o *Order) TransitionTo(next Status, actor kernel.UserID) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		if next == Accepted && o.driverID != nil {
			return errs.NewTransitionIsInvalidErrorWithCause(o.status, next, ErrAlreadyClaimed)
		}
		return err
	}

	if err = o.authorize(next, actor); err != nil {
		return err
	}

	if o.status == Pending && newStatus == Accepted {
		d := actor
		o.driverID = &d
	}
	o.status = newStatus
	return nil
}

func (o *Order) authorize(next Status, actor kernel.UserID) error {
	isDriver := o.driverID != nil && o.driverID.IsEqual(actor)

	switch next {
	case Accepted:
		return nil
	case Cancelled:
		if actor.IsEqual(o.senderID) || isDriver {
			return nil
		}
	default:
		if isDriver {
			return nil
		}
	}
	return ErrActorIsNotAllowed
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setSenderID(senderID kernel.UserID) error {
	if err := senderID.Validate(); err != nil {
		return err
	}
	o.senderID = senderID
	return nil
}

func (o *Order) setShipment(shipment Shipment) error {
	if err := shipment.Validate(); err != nil {
		return err
	}
	o.shipment = shipment
	return nil
}

func (o *Order) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price", errors.New(price.String()+" is not greater than 0"))
	}
	o.price = price
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return ErrCreatedAtIsRequired
	}
	o.createdAt = createdAt
	return nil
}

func validateDriverForStatus(status Status, driverID *kernel.UserID) error {
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return err
		}
	}

	switch {
	case status == Pending && driverID != nil:
		return errs.NewValueIsInvalidError("driver on a pending order")
	case status != Pending && status != Cancelled && driverID == nil:
		return errs.NewValueIsRequiredError("driver for status " + status.String())
	}
	return nil
}
