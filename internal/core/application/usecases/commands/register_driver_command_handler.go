package commands

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"levaai/internal/core/domain/model/user"
	"levaai/internal/core/ports"
)

var (
	ErrVerificationInProgress = errors.New("a verification for this user is already in progress")
	ErrVerificationTimedOut   = errors.New("document verification timed out")
	ErrVerificationRejected   = errors.New("document verification rejected")
	ErrVerificationFailed     = errors.New("document verification failed")
)

const DefaultVerificationTimeout = 30 * time.Second

// RegisterDriverCommandHandler runs the driver verification flow:
//
//  1. refuse a second submission while one is pending for the same user
//  2. call the verification service, bounded by timeout, without holding the store
//  3. on approval, attach the details and mark the user verified in one unit of work
//
// The handler must be shared between requests for the in-flight check to work.
type RegisterDriverCommandHandler struct {
	uowFactory ProfileUoWFactory
	verifier   ports.VerificationService
	timeout    time.Duration

	mu       *sync.Mutex
	inFlight map[string]struct{}
}

func NewRegisterDriverCommandHandler(
	uowFactory ProfileUoWFactory,
	verifier ports.VerificationService,
	timeout time.Duration,
) RegisterDriverCommandHandler {
	if timeout <= 0 {
		timeout = DefaultVerificationTimeout
	}
	return RegisterDriverCommandHandler{
		uowFactory: uowFactory,
		verifier:   verifier,
		timeout:    timeout,
		mu:         &sync.Mutex{},
		inFlight:   make(map[string]struct{}),
	}
}

func (h RegisterDriverCommandHandler) Handle(ctx context.Context, cmd RegisterDriverCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	release, err := h.acquire(cmd)
	if err != nil {
		return nil, err
	}
	defer release()

	if err = h.ensureNotVerified(ctx, cmd); err != nil {
		return nil, err
	}

	if err = h.verify(ctx, cmd); err != nil {
		return nil, err
	}

	return h.complete(ctx, cmd)
}

func (h RegisterDriverCommandHandler) acquire(cmd RegisterDriverCommand) (func(), error) {
	key := cmd.UserID().String()

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, busy := h.inFlight[key]; busy {
		return nil, ErrVerificationInProgress
	}
	h.inFlight[key] = struct{}{}

	return func() {
		h.mu.Lock()
		delete(h.inFlight, key)
		h.mu.Unlock()
	}, nil
}

func (h RegisterDriverCommandHandler) ensureNotVerified(ctx context.Context, cmd RegisterDriverCommand) error {
	u, err := h.uowFactory.Create().UserRepository().Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}
	if u.IsDriverVerified() {
		return user.ErrDriverAlreadyVerified
	}
	return nil
}

func (h RegisterDriverCommandHandler) verify(ctx context.Context, cmd RegisterDriverCommand) error {
	verifyCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	result, err := h.verifier.Verify(verifyCtx, cmd.UserID(), cmd.Details())
	switch {
	case err == nil && result.Approved:
		return nil
	case err == nil:
		return fmt.Errorf("%w: %s", ErrVerificationRejected, result.Reason)
	case errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil:
		return ErrVerificationTimedOut
	case ctx.Err() != nil:
		return ctx.Err()
	default:
		return errors.Join(ErrVerificationFailed, err)
	}
}

func (h RegisterDriverCommandHandler) complete(ctx context.Context, cmd RegisterDriverCommand) (*user.User, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserRepository()
	u, err := users.Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	if err = u.CompleteDriverRegistration(cmd.Details()); err != nil {
		return nil, err
	}

	if err = users.Update(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}
