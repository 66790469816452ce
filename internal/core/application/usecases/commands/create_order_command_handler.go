package commands

import (
	"context"

	"levaai/internal/core/domain/model/estimate"
	"levaai/internal/core/domain/model/order"
	"levaai/internal/core/ports"
)

// CreateOrderCommandHandler turns a quote into a pending order. The order's
// price is the quote's estimated price and never changes afterwards.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	quotes     ports.QuoteBook
	now        ports.Clock
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory, quotes ports.QuoteBook, now ports.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		quotes:     quotes,
		now:        now,
	}
}

// Handle checks the sender exists and that the quote priced this shipment's
// parcel, stores the order and only then consumes the quote, so a failed
// order leaves the quote usable. Superseded, expired, used and mismatched
// quotes are rejected with the quote package errors.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	if _, err := uow.UserRepository().Get(ctx, cmd.SenderID()); err != nil {
		return nil, err
	}

	now := h.now()
	q, err := h.quotes.Lookup(ctx, cmd.SenderID(), cmd.QuoteID(), now)
	if err != nil {
		return nil, err
	}

	shipment := cmd.Shipment()
	parcel := estimate.NewRequest(shipment.ProductType(), shipment.Dimensions(), shipment.Weight(), "")
	if err = q.Covers(parcel); err != nil {
		return nil, err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.SenderID(), shipment, q.Estimate().EstimatedPrice(), now)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if _, err = h.quotes.Consume(ctx, cmd.SenderID(), cmd.QuoteID(), now); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
