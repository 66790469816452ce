package cmd

import (
	"context"
	"errors"
	"time"

	"levaai/internal/core/domain/model/kernel"
	"levaai/internal/core/domain/model/order"
	"levaai/internal/core/domain/model/user"
	"levaai/internal/core/ports"
)

var demoDriverID = kernel.MustUserID("d1")

// seedDemoData stores the demo sender, a verified driver and one delivered
// order from the day before, in a single unit of work.
func seedDemoData(ctx context.Context, uow ports.UnitOfWork, senderID kernel.UserID, now time.Time) error {
	sender, err := user.NewUser(senderID, "Bruno Silva", "bruno@example.com", user.Sender, 4.8, kernel.MustMoney("150.00"))
	if err != nil {
		return err
	}

	driver, err := user.NewUser(demoDriverID, "Carlos Souza", "carlos@example.com", user.Driver, 4.9, kernel.MustMoney("0.00"))
	if err != nil {
		return err
	}
	details, err := user.NewDriverDetails("Carlos Souza", "987.654.321-00", "09876543210", "Honda CG 160", "BRA2E19")
	if err != nil {
		return err
	}
	if err = driver.CompleteDriverRegistration(details); err != nil {
		return err
	}

	shipment, err := order.NewShipment(
		"Av. Paulista, 1000 - São Paulo",
		"Rua Augusta, 500 - São Paulo",
		"Documentos", "30x20x2cm", "0.5kg", "Envelope lacrado",
	)
	if err != nil {
		return err
	}
	delivered, err := order.RestoreOrder(
		kernel.NewUUID(), senderID, shipment, kernel.MustMoney("18.50"),
		now.Add(-24*time.Hour), order.Delivered, &demoDriverID,
	)
	if err != nil {
		return err
	}

	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = errors.Join(
		uow.UserRepository().Add(ctx, sender),
		uow.UserRepository().Add(ctx, driver),
		uow.OrderRepository().Add(ctx, delivered),
	); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
