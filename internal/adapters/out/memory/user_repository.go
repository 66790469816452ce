package memory

import (
	"context"
	"fmt"

	"levaai/internal/core/domain/model/kernel"
	"levaai/internal/core/domain/model/user"
	"levaai/internal/pkg/errs"
)

type UserRepository struct {
	uow *UnitOfWork
}

func (r *UserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.uow.within(ctx, func(tx *changeSet) error {
		id := aggregate.ID().String()
		if _, ok := r.lookup(tx, id); ok {
			return fmt.Errorf("%w: user %s", ErrDuplicateKey, id)
		}
		tx.users[id] = aggregate.Clone()
		return nil
	})
}

func (r *UserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.uow.within(ctx, func(tx *changeSet) error {
		id := aggregate.ID().String()
		if _, ok := r.lookup(tx, id); !ok {
			return errs.NewObjectNotFoundError("user", id)
		}
		tx.users[id] = aggregate.Clone()
		return nil
	})
}

func (r *UserRepository) Get(ctx context.Context, id kernel.UserID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var found *user.User
	err := r.uow.within(ctx, func(tx *changeSet) error {
		u, ok := r.lookup(tx, id.String())
		if !ok {
			return errs.NewObjectNotFoundError("user", id.String())
		}
		found = u.Clone()
		return nil
	})
	return found, err
}

func (r *UserRepository) lookup(tx *changeSet, id string) (*user.User, bool) {
	if u, ok := tx.users[id]; ok {
		return u, true
	}
	u, ok := r.uow.store.users[id]
	return u, ok
}
