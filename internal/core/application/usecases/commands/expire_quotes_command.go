package commands

import (
	"context"
	"errors"

	"levaai/internal/core/ports"
	"levaai/internal/pkg/guard"
)

var ErrExpireQuotesCommandIsNotConstructed = errors.New(
	"ExpireQuotesCommand must be created via NewExpireQuotesCommand constructor",
)

// ExpireQuotesCommand drops quotes whose time to live has passed.
type ExpireQuotesCommand struct {
	guard guard.ConstructorGuard
}

func NewExpireQuotesCommand() ExpireQuotesCommand {
	return ExpireQuotesCommand{guard: guard.NewConstructorGuard()}
}

func (c ExpireQuotesCommand) Validate() error {
	return c.guard.Validate(ErrExpireQuotesCommandIsNotConstructed)
}

type ExpireQuotesCommandHandler struct {
	quotes ports.QuoteBook
	now    ports.Clock
}

func NewExpireQuotesCommandHandler(quotes ports.QuoteBook, now ports.Clock) ExpireQuotesCommandHandler {
	return ExpireQuotesCommandHandler{quotes: quotes, now: now}
}

// Handle returns the number of quotes removed.
func (h ExpireQuotesCommandHandler) Handle(ctx context.Context, cmd ExpireQuotesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	return h.quotes.ExpireBefore(ctx, h.now())
}
