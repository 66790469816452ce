package memory

import (
	"context"
	"fmt"

	"levaai/internal/core/domain/model/kernel"
	"levaai/internal/core/domain/model/order"
	"levaai/internal/pkg/errs"
)

type OrderRepository struct {
	uow *UnitOfWork
}

func (r *OrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.uow.within(ctx, func(tx *changeSet) error {
		id := aggregate.ID().String()
		if _, ok := r.lookup(tx, id); ok {
			return fmt.Errorf("%w: order %s", ErrDuplicateKey, id)
		}
		tx.orders[id] = aggregate.Clone()
		tx.newOrders = append(tx.newOrders, id)
		return nil
	})
}

func (r *OrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.uow.within(ctx, func(tx *changeSet) error {
		id := aggregate.ID().String()
		if _, ok := r.lookup(tx, id); !ok {
			return errs.NewObjectNotFoundError("order", id)
		}
		tx.orders[id] = aggregate.Clone()
		return nil
	})
}

func (r *OrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var found *order.Order
	err := r.uow.within(ctx, func(tx *changeSet) error {
		o, ok := r.lookup(tx, id.String())
		if !ok {
			return errs.NewObjectNotFoundError("order", id.String())
		}
		found = o.Clone()
		return nil
	})
	return found, err
}

func (r *OrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	var orders []*order.Order
	err := r.uow.within(ctx, func(tx *changeSet) error {
		index := append(append([]string(nil), r.uow.store.orderIndex...), tx.newOrders...)
		orders = make([]*order.Order, 0, len(index))
		for i := len(index) - 1; i >= 0; i-- {
			o, _ := r.lookup(tx, index[i])
			orders = append(orders, o.Clone())
		}
		return nil
	})
	return orders, err
}

func (r *OrderRepository) lookup(tx *changeSet, id string) (*order.Order, bool) {
	if o, ok := tx.orders[id]; ok {
		return o, true
	}
	o, ok := r.uow.store.orders[id]
	return o, ok
}
