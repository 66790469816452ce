// Package ports defines the contracts between the application core and its
// adapters: repositories behind a unit of work, and the external services
// (estimate generator, support assistant, document verification, quote book).
package ports

import (
	"context"
	"time"

	"levaai/internal/core/domain/model/kernel"
	"levaai/internal/core/domain/model/order"
)

// Clock returns the current time. Handlers take one so tests can pin time.
type Clock func() time.Time

// OrderRepository stores order aggregates. Orders are never deleted.
type OrderRepository interface {
	// Add stores a new order. The id must not exist yet.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns the order or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// List returns every order, newest first. Callers receive copies.
	List(ctx context.Context) ([]*order.Order, error)
}
