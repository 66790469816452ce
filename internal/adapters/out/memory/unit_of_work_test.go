package memory_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"levaai/internal/adapters/out/memory"
	"levaai/internal/core/domain/model/kernel"
	"levaai/internal/core/domain/model/order"
	"levaai/internal/core/domain/model/session"
	"levaai/internal/core/domain/model/user"
	"levaai/internal/core/ports"
	"levaai/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type UnitOfWorkTestSuite struct {
	suite.Suite
	factory ports.UnitOfWorkFactory
}

func (s *UnitOfWorkTestSuite) SetupTest() {
	s.factory = memory.NewUnitOfWorkFactory(memory.NewStore())
}

func (s *UnitOfWorkTestSuite) newOrder() *order.Order {
	shipment, err := order.NewShipment("Av. Paulista, 1000", "Rua Augusta, 500", "Documentos", "30x20x2cm", "0.5kg", "")
	s.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.MustUserID("u1"), shipment, kernel.MustMoney("18.50"), time.Now())
	s.Require().NoError(err)
	return o
}

func (s *UnitOfWorkTestSuite) TestCommitPublishesChanges() {
	ctx := s.T().Context()
	o := s.newOrder()

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.OrderRepository().Add(ctx, o))
	s.Require().NoError(uow.Commit(ctx))

	got, err := s.factory.Create().OrderRepository().Get(ctx, o.ID())
	s.Require().NoError(err)
	s.True(got.IsEqual(o))
	s.Equal(order.Pending, got.Status())
}

func (s *UnitOfWorkTestSuite) TestRollbackDiscardsChanges() {
	ctx := s.T().Context()
	o := s.newOrder()
	s.Require().NoError(s.factory.Create().OrderRepository().Add(ctx, o))

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	staged, err := uow.OrderRepository().Get(ctx, o.ID())
	s.Require().NoError(err)
	s.Require().NoError(staged.Cancel(kernel.MustUserID("u1")))
	s.Require().NoError(uow.OrderRepository().Update(ctx, staged))
	s.Require().NoError(uow.OrderRepository().Add(ctx, s.newOrder()))
	s.Require().NoError(uow.Rollback(ctx))

	orders, err := s.factory.Create().OrderRepository().List(ctx)
	s.Require().NoError(err)
	s.Require().Len(orders, 1)
	s.Equal(order.Pending, orders[0].Status())
}

func (s *UnitOfWorkTestSuite) TestRollbackAfterCommitIsRejected() {
	ctx := s.T().Context()
	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.Commit(ctx))

	s.Require().ErrorIs(uow.Rollback(ctx), memory.ErrNoActiveTransaction)
	s.Require().ErrorIs(uow.Commit(ctx), memory.ErrNoActiveTransaction)

	// the store is free again
	other := s.factory.Create()
	s.Require().NoError(other.Begin(ctx))
	s.Require().NoError(other.Rollback(ctx))
}

func (s *UnitOfWorkTestSuite) TestReadsSeeOwnWrites() {
	ctx := s.T().Context()
	o := s.newOrder()

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()
	s.Require().NoError(uow.OrderRepository().Add(ctx, o))

	got, err := uow.OrderRepository().Get(ctx, o.ID())
	s.Require().NoError(err)
	s.True(got.IsEqual(o))
}

func (s *UnitOfWorkTestSuite) TestListIsNewestFirst() {
	ctx := s.T().Context()
	first, second, third := s.newOrder(), s.newOrder(), s.newOrder()
	repo := s.factory.Create().OrderRepository()
	s.Require().NoError(repo.Add(ctx, first))
	s.Require().NoError(repo.Add(ctx, second))

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.OrderRepository().Add(ctx, third))
	orders, err := uow.OrderRepository().List(ctx)
	s.Require().NoError(err)
	s.Require().NoError(uow.Commit(ctx))

	s.Require().Len(orders, 3)
	s.True(orders[0].IsEqual(third))
	s.True(orders[1].IsEqual(second))
	s.True(orders[2].IsEqual(first))
}

func (s *UnitOfWorkTestSuite) TestRepositoriesReturnCopies() {
	ctx := s.T().Context()
	o := s.newOrder()
	repo := s.factory.Create().OrderRepository()
	s.Require().NoError(repo.Add(ctx, o))

	s.Require().NoError(o.Cancel(kernel.MustUserID("u1")))
	got, err := repo.Get(ctx, o.ID())
	s.Require().NoError(err)
	s.Require().NoError(got.Accept(kernel.MustUserID("d1")))

	again, err := repo.Get(ctx, o.ID())
	s.Require().NoError(err)
	s.Equal(order.Pending, again.Status())
}

func (s *UnitOfWorkTestSuite) TestNotFoundAndDuplicates() {
	ctx := s.T().Context()
	repo := s.factory.Create().OrderRepository()
	o := s.newOrder()

	_, err := repo.Get(ctx, o.ID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
	s.Require().ErrorIs(repo.Update(ctx, o), errs.ErrObjectNotFound)

	s.Require().NoError(repo.Add(ctx, o))
	s.Require().ErrorIs(repo.Add(ctx, o), memory.ErrDuplicateKey)
}

func (s *UnitOfWorkTestSuite) TestUsersAndSessions() {
	ctx := s.T().Context()
	u, err := user.NewUser(kernel.MustUserID("u1"), "Bruno Silva", "bruno@example.com", user.Sender, 4.8, kernel.MustMoney("150"))
	s.Require().NoError(err)
	sess, err := session.NewSession(u.ID())
	s.Require().NoError(err)

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.UserRepository().Add(ctx, u))
	s.Require().NoError(uow.SessionRepository().Save(ctx, sess))
	s.Require().NoError(uow.Commit(ctx))

	gotUser, err := s.factory.Create().UserRepository().Get(ctx, u.ID())
	s.Require().NoError(err)
	s.Equal("Bruno Silva", gotUser.Name())

	gotSess, err := s.factory.Create().SessionRepository().Get(ctx, u.ID())
	s.Require().NoError(err)
	s.False(gotSess.ActingAsDriver())

	_, err = s.factory.Create().SessionRepository().Get(ctx, kernel.MustUserID("nobody"))
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = s.factory.Create().UserRepository().Get(ctx, kernel.MustUserID("nobody"))
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *UnitOfWorkTestSuite) TestBeginHonoursContext() {
	ctx := s.T().Context()
	holder := s.factory.Create()
	s.Require().NoError(holder.Begin(ctx))
	defer func() { _ = holder.Rollback(ctx) }()

	waitCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()

	err := s.factory.Create().Begin(waitCtx)
	s.Require().ErrorIs(err, context.DeadlineExceeded)
}

func (s *UnitOfWorkTestSuite) TestConcurrentClaimsHaveOneWinner() {
	ctx := s.T().Context()
	o := s.newOrder()
	s.Require().NoError(s.factory.Create().OrderRepository().Add(ctx, o))

	const drivers = 16
	var wins atomic.Int32
	var wg sync.WaitGroup

	for i := range drivers {
		wg.Add(1)
		go func(driver kernel.UserID) {
			defer wg.Done()

			uow := s.factory.Create()
			if err := uow.Begin(ctx); err != nil {
				return
			}
			defer func() { _ = uow.Rollback(ctx) }()

			staged, err := uow.OrderRepository().Get(ctx, o.ID())
			if err != nil || staged.Accept(driver) != nil {
				return
			}
			if uow.OrderRepository().Update(ctx, staged) != nil || uow.Commit(ctx) != nil {
				return
			}
			wins.Add(1)
		}(kernel.MustUserID("d" + string(rune('a'+i))))
	}
	wg.Wait()

	s.Equal(int32(1), wins.Load())
	got, err := s.factory.Create().OrderRepository().Get(ctx, o.ID())
	s.Require().NoError(err)
	s.Equal(order.Accepted, got.Status())
	s.NotNil(got.DriverID())
}

func TestUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}
