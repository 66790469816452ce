package commands

import (
	"context"
	"errors"

	"levaai/internal/core/domain/model/session"
	"levaai/internal/pkg/errs"
)

type ToggleRoleResult struct {
	Decision       session.Decision
	ActingAsDriver bool
}

// ToggleRoleCommandHandler applies session.RequestToggleRole to the stored
// session. An unverified user asking for driver mode gets the
// RequireRegistration decision together with session.ErrRegistrationRequired,
// and the session stays in sender mode.
type ToggleRoleCommandHandler struct {
	uowFactory ProfileUoWFactory
}

func NewToggleRoleCommandHandler(uowFactory ProfileUoWFactory) ToggleRoleCommandHandler {
	return ToggleRoleCommandHandler{uowFactory: uowFactory}
}

func (h ToggleRoleCommandHandler) Handle(ctx context.Context, cmd ToggleRoleCommand) (ToggleRoleResult, error) {
	if err := cmd.Validate(); err != nil {
		return ToggleRoleResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ToggleRoleResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	u, err := uow.UserRepository().Get(ctx, cmd.UserID())
	if err != nil {
		return ToggleRoleResult{}, err
	}

	sessions := uow.SessionRepository()
	sess, err := sessions.Get(ctx, cmd.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		sess, err = session.NewSession(cmd.UserID())
	}
	if err != nil {
		return ToggleRoleResult{}, err
	}

	decision, err := sess.ToggleRole(u.IsDriverVerified())
	if err != nil {
		return ToggleRoleResult{Decision: decision, ActingAsDriver: sess.ActingAsDriver()}, err
	}

	if err = sessions.Save(ctx, sess); err != nil {
		return ToggleRoleResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ToggleRoleResult{}, err
	}

	return ToggleRoleResult{Decision: decision, ActingAsDriver: sess.ActingAsDriver()}, nil
}
