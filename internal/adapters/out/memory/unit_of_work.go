package memory

import (
	"context"

	"levaai/internal/core/domain/model/order"
	"levaai/internal/core/domain/model/session"
	"levaai/internal/core/domain/model/user"
	"levaai/internal/core/ports"
)

type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// changeSet is what a transaction wrote. Entries shadow the committed state.
type changeSet struct {
	orders    map[string]*order.Order
	newOrders []string
	users     map[string]*user.User
	sessions  map[string]*session.Session
}

// UnitOfWork is not safe for concurrent use; create one per operation.
type UnitOfWork struct {
	store *Store
	tx    *changeSet
}

// Begin waits for the store or for ctx to end. Calling Begin inside an open
// transaction is a no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	select {
	case uow.store.lock <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}

	uow.tx = &changeSet{
		orders:   make(map[string]*order.Order),
		users:    make(map[string]*user.User),
		sessions: make(map[string]*session.Session),
	}
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoActiveTransaction
	}

	s := uow.store
	for id, o := range uow.tx.orders {
		s.orders[id] = o
	}
	s.orderIndex = append(s.orderIndex, uow.tx.newOrders...)
	for id, u := range uow.tx.users {
		s.users[id] = u
	}
	for id, sess := range uow.tx.sessions {
		s.sessions[id] = sess
	}

	uow.end()
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return ErrNoActiveTransaction
	}
	uow.end()
	return nil
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: uow}
}

func (uow *UnitOfWork) UserRepository() ports.UserRepository {
	return &UserRepository{uow: uow}
}

func (uow *UnitOfWork) SessionRepository() ports.SessionRepository {
	return &SessionRepository{uow: uow}
}

func (uow *UnitOfWork) end() {
	uow.tx = nil
	<-uow.store.lock
}

// within runs fn in the open transaction, or in a transaction of its own when
// none is open.
func (uow *UnitOfWork) within(ctx context.Context, fn func(tx *changeSet) error) error {
	if uow.tx != nil {
		return fn(uow.tx)
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	if err := fn(uow.tx); err != nil {
		_ = uow.Rollback(ctx)
		return err
	}
	return uow.Commit(ctx)
}
