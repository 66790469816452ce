package commands

import (
	"errors"

	"levaai/internal/core/domain/model/kernel"
	"levaai/internal/core/domain/model/order"
	"levaai/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand confirms the sender's current quote as a new order.
//
// Example:
//
//	shipment, _ := order.NewShipment("Av. Paulista, 1000", "Rua Augusta, 500", "Documentos", "30x20x2cm", "0.5kg", "")
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), senderID, shipment, quoteID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	senderID kernel.UserID
	shipment order.Shipment
	quoteID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	orderID kernel.UUID,
	senderID kernel.UserID,
	shipment order.Shipment,
	quoteID kernel.UUID,
) (CreateOrderCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		senderID.Validate(),
		shipment.Validate(),
		quoteID.Validate(),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		orderID:  orderID,
		senderID: senderID,
		shipment: shipment,
		quoteID:  quoteID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID     { return c.orderID }
func (c CreateOrderCommand) SenderID() kernel.UserID  { return c.senderID }
func (c CreateOrderCommand) Shipment() order.Shipment { return c.shipment }
func (c CreateOrderCommand) QuoteID() kernel.UUID     { return c.quoteID }
