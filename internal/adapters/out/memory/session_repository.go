package memory

import (
	"context"

	"levaai/internal/core/domain/model/kernel"
	"levaai/internal/core/domain/model/session"
	"levaai/internal/pkg/errs"
)

type SessionRepository struct {
	uow *UnitOfWork
}

func (r *SessionRepository) Get(ctx context.Context, userID kernel.UserID) (*session.Session, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var found *session.Session
	err := r.uow.within(ctx, func(tx *changeSet) error {
		s, ok := tx.sessions[userID.String()]
		if !ok {
			s, ok = r.uow.store.sessions[userID.String()]
		}
		if !ok {
			return errs.NewObjectNotFoundError("session", userID.String())
		}
		found = s.Clone()
		return nil
	})
	return found, err
}

func (r *SessionRepository) Save(ctx context.Context, s *session.Session) error {
	if err := s.Validate(); err != nil {
		return err
	}

	return r.uow.within(ctx, func(tx *changeSet) error {
		tx.sessions[s.UserID().String()] = s.Clone()
		return nil
	})
}
