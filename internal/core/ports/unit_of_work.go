package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Changes made through its
// repositories become visible to others only on Commit.
type UnitOfWork interface {
	// Begin starts the transaction. It blocks while another transaction holds the store.
	Begin(ctx context.Context) error

	// Commit publishes the changes and ends the transaction.
	Commit(ctx context.Context) error

	// Rollback discards the changes. It returns an error when no transaction
	// is active, which callers deferring it after Commit ignore.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	UserRepository() UserRepository
	SessionRepository() SessionRepository
}
