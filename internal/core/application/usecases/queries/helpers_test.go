package queries_test

import (
	"context"
	"testing"
	"time"

	"levaai/internal/adapters/out/memory"
	"levaai/internal/core/application/usecases/queries"
	"levaai/internal/core/domain/model/estimate"
	"levaai/internal/core/domain/model/kernel"
	"levaai/internal/core/domain/model/order"
	"levaai/internal/core/domain/model/user"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type readModelFactoryFunc func() queries.ReadModel

func (f readModelFactoryFunc) Create() queries.ReadModel { return f() }

func readModels(store *memory.Store) queries.ReadModelFactory {
	f := memory.NewUnitOfWorkFactory(store)
	return readModelFactoryFunc(func() queries.ReadModel { return f.Create() })
}

func seedOrder(t *testing.T, store *memory.Store, status order.Status, driverID string, createdAt time.Time) *order.Order {
	t.Helper()
	s, err := order.NewShipment("Av. Paulista, 1000", "Rua Augusta, 500", "Documentos", "", "", "")
	require.NoError(t, err)
	var d *kernel.UserID
	if driverID != "" {
		id := kernel.MustUserID(driverID)
		d = &id
	}
	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.MustUserID("u1"), s, kernel.MustMoney("18.50"), createdAt, status, d)
	require.NoError(t, err)
	require.NoError(t, memory.NewUnitOfWorkFactory(store).Create().OrderRepository().Add(t.Context(), o))
	return o
}

func seedUser(t *testing.T, store *memory.Store, id string, verified bool) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.MustUserID(id), "Bruno Silva", "bruno@example.com", user.Sender, 4.8, kernel.MustMoney("150.00"))
	require.NoError(t, err)
	if verified {
		d, err := user.NewDriverDetails("Bruno Silva", "123.456.789-00", "01234567890", "Honda CG 160", "ABC1D23")
		require.NoError(t, err)
		require.NoError(t, u.CompleteDriverRegistration(d))
	}
	require.NoError(t, memory.NewUnitOfWorkFactory(store).Create().UserRepository().Add(t.Context(), u))
	return u
}

type MockEstimateGateway struct{ mock.Mock }

func (m *MockEstimateGateway) Estimate(ctx context.Context, req estimate.Request) estimate.Estimate {
	args := m.Called(ctx, req)
	return args.Get(0).(estimate.Estimate)
}

type MockSupportAssistant struct{ mock.Mock }

func (m *MockSupportAssistant) Ask(ctx context.Context, question string) (string, error) {
	args := m.Called(ctx, question)
	return args.String(0), args.Error(1)
}
