package ports

import (
	"context"
	"errors"
	"time"

	"levaai/internal/core/domain/model/estimate"
	"levaai/internal/core/domain/model/kernel"
	"levaai/internal/core/domain/model/quote"
	"levaai/internal/core/domain/model/user"
)

// ErrNotRetryable marks an external failure that repeating the call cannot
// fix, such as a missing API key or a rejected request.
var ErrNotRetryable = errors.New("external call is not retryable")

// EstimateProvider asks the generative service for a priced estimate. Errors
// are returned as is; the estimate gateway owns retries and the fallback.
// A payload that fails validation is reported with estimate.ErrSchemaViolation.
type EstimateProvider interface {
	Estimate(ctx context.Context, req estimate.Request) (estimate.Estimate, error)
}

// SupportAssistant answers free-text questions about the platform.
type SupportAssistant interface {
	Ask(ctx context.Context, question string) (string, error)
}

// VerificationResult is the verdict of a document check.
type VerificationResult struct {
	Approved bool
	Reason   string
}

// VerificationService checks a driver's documents. Implementations honour ctx
// cancellation; the caller bounds the call with a timeout.
type VerificationService interface {
	Verify(ctx context.Context, userID kernel.UserID, details user.DriverDetails) (VerificationResult, error)
}

// QuoteBook tracks the newest estimate request per sender and the quotes
// published for it.
type QuoteBook interface {
	// Reserve registers a new estimate request and supersedes every earlier
	// request and quote of the sender.
	Reserve(ctx context.Context, senderID kernel.UserID) (quote.Ticket, error)

	// Publish stores est, priced for req, as the sender's current quote, or
	// fails with quote.ErrQuoteIsSuperseded when a newer ticket was reserved
	// meanwhile.
	Publish(
		ctx context.Context,
		ticket quote.Ticket,
		req estimate.Request,
		est estimate.Estimate,
		now time.Time,
	) (*quote.Quote, error)

	// Lookup returns the sender's current quote if Consume would accept it,
	// without marking it used.
	Lookup(ctx context.Context, senderID kernel.UserID, quoteID kernel.UUID, now time.Time) (*quote.Quote, error)

	// Consume marks the sender's current quote used and returns it. Unknown
	// ids fail with errs.ObjectNotFoundError; superseded, expired or used
	// quotes fail with the matching quote error. Quotes removed by
	// ExpireBefore keep failing as expired.
	Consume(ctx context.Context, senderID kernel.UserID, quoteID kernel.UUID, now time.Time) (*quote.Quote, error)

	// ExpireBefore drops quotes that expired at or before now and returns how many.
	ExpireBefore(ctx context.Context, now time.Time) (int, error)
}
