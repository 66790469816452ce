package commands_test

import (
	"testing"
	"time"

	"levaai/internal/adapters/out/memory"
	"levaai/internal/core/application/usecases/commands"
	"levaai/internal/core/domain/model/estimate"
	"levaai/internal/core/domain/model/kernel"
	"levaai/internal/core/domain/model/order"
	"levaai/internal/core/domain/model/quote"
	"levaai/internal/core/domain/model/session"
	"levaai/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

type uowFactoryFunc func() commands.UoW

func (f uowFactoryFunc) Create() commands.UoW { return f() }

type profileUoWFactoryFunc func() commands.ProfileUoW

func (f profileUoWFactoryFunc) Create() commands.ProfileUoW { return f() }

// memoryFactories wires the handlers to a real in-memory store.
func memoryFactories(store *memory.Store) (commands.UoWFactory, commands.ProfileUoWFactory) {
	f := memory.NewUnitOfWorkFactory(store)
	return uowFactoryFunc(func() commands.UoW { return f.Create() }),
		profileUoWFactoryFunc(func() commands.ProfileUoW { return f.Create() })
}

func newUser(t *testing.T, id string, verified bool) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.MustUserID(id), "User "+id, "", user.Sender, 4.5, kernel.MustMoney("0"))
	require.NoError(t, err)
	if verified {
		require.NoError(t, u.CompleteDriverRegistration(newDetails(t)))
	}
	return u
}

func newDetails(t *testing.T) user.DriverDetails {
	t.Helper()
	d, err := user.NewDriverDetails("Carlos Souza", "123.456.789-00", "01234567890", "Honda CG 160", "ABC1D23")
	require.NoError(t, err)
	return d
}

func driverSession(t *testing.T, id string) *session.Session {
	t.Helper()
	s, err := session.NewSession(kernel.MustUserID(id))
	require.NoError(t, err)
	_, err = s.ToggleRole(true)
	require.NoError(t, err)
	return s
}

func newShipment(t *testing.T) order.Shipment {
	t.Helper()
	s, err := order.NewShipment("Av. Paulista, 1000", "Rua Augusta, 500", "Documentos", "30x20x2cm", "0.5kg", "")
	require.NoError(t, err)
	return s
}

func orderIn(t *testing.T, status order.Status, driverID string) *order.Order {
	t.Helper()
	var d *kernel.UserID
	if driverID != "" {
		id := kernel.MustUserID(driverID)
		d = &id
	}
	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.MustUserID("u1"), newShipment(t), kernel.MustMoney("18.50"), fixedNow, status, d)
	require.NoError(t, err)
	return o
}

func newQuote(t *testing.T, sender string, price float64) *quote.Quote {
	t.Helper()
	e, err := estimate.NewEstimate("Express", price, "short hop", "Low")
	require.NoError(t, err)
	parcel := estimate.NewRequest("Documentos", "30x20x2cm", "0.5kg", "")
	q, err := quote.NewQuote(kernel.NewUUID(), kernel.MustUserID(sender), parcel, e, fixedNow, 15*time.Minute)
	require.NoError(t, err)
	return q
}
