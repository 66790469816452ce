package ports

import (
	"context"

	"levaai/internal/core/domain/model/kernel"
	"levaai/internal/core/domain/model/session"
	"levaai/internal/core/domain/model/user"
)

type UserRepository interface {
	Add(ctx context.Context, aggregate *user.User) error
	Update(ctx context.Context, aggregate *user.User) error

	// Get returns the user or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UserID) (*user.User, error)
}

// SessionRepository keeps one acting-mode session per user.
type SessionRepository interface {
	// Get returns the user's session or an errs.ObjectNotFoundError.
	Get(ctx context.Context, userID kernel.UserID) (*session.Session, error)

	// Save inserts or replaces the session.
	Save(ctx context.Context, s *session.Session) error
}
