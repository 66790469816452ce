// Package queries contains read operations: order views, the caller's profile,
// price estimates and support answers.
package queries

import "levaai/internal/core/ports"

type (
	// ReadModel exposes repositories for reads outside an explicit
	// transaction; each call sees a consistent committed snapshot.
	ReadModel interface {
		OrderRepository() ports.OrderRepository
		UserRepository() ports.UserRepository
		SessionRepository() ports.SessionRepository
	}

	ReadModelFactory interface {
		Create() ReadModel
	}
)
