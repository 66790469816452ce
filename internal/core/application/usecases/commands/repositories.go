// Package commands contains the operations that change marketplace state.
// Every command follows the same pattern: a validated command value, a handler
// that opens a unit of work, applies domain rules, and commits.
package commands

import (
	"context"

	"levaai/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	SessionRepoFactory interface {
		SessionRepository() ports.SessionRepository
	}

	// ProfileUoW covers operations on a user and their session only.
	ProfileUoW interface {
		TxManager
		UserRepoFactory
		SessionRepoFactory
	}

	ProfileUoWFactory interface {
		Create() ProfileUoW
	}

	// UoW spans orders, users and sessions, as the claim needs all three.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().Get(ctx, id)
	//   driver, err := uow.UserRepository().Get(ctx, driverID)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		UserRepoFactory
		SessionRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
