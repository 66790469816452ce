// Package memory is the in-process storage of the marketplace: orders, users
// and sessions behind a unit of work, plus the quote book.
//
// All state lives in one Store. A unit of work holds the store for its whole
// transaction, so a read-check-write such as a claim is serialised against
// every other transaction:
//
//	factory := memory.NewUnitOfWorkFactory(store)
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	o, err := uow.OrderRepository().Get(ctx, id)
//	...
//	if err = uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Repositories hand out copies. Changes are staged in the unit of work and
// published on Commit; Rollback drops them, which leaves the store exactly as
// it was before Begin.
package memory

import (
	"errors"

	"levaai/internal/core/domain/model/order"
	"levaai/internal/core/domain/model/session"
	"levaai/internal/core/domain/model/user"
)

var (
	ErrNoActiveTransaction = errors.New("no active transaction")
	ErrDuplicateKey        = errors.New("duplicate key")
)

// Store is the committed state. It is only read or written by a unit of work
// holding lock.
type Store struct {
	lock chan struct{}

	orders     map[string]*order.Order
	orderIndex []string
	users      map[string]*user.User
	sessions   map[string]*session.Session
}

func NewStore() *Store {
	return &Store{
		lock:     make(chan struct{}, 1),
		orders:   make(map[string]*order.Order),
		users:    make(map[string]*user.User),
		sessions: make(map[string]*session.Session),
	}
}
