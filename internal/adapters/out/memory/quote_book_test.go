package memory_test

import (
	"testing"
	"time"

	"levaai/internal/adapters/out/memory"
	"levaai/internal/core/domain/model/estimate"
	"levaai/internal/core/domain/model/kernel"
	"levaai/internal/core/domain/model/quote"
	"levaai/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	bruno = kernel.MustUserID("u1")
	ana   = kernel.MustUserID("u2")
	t0    = time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)

	envelope = estimate.NewRequest("Documentos", "30x20x2cm", "0.5kg", "")
)

func newBook(t *testing.T) *memory.QuoteBook {
	t.Helper()
	b, err := memory.NewQuoteBook(15 * time.Minute)
	require.NoError(t, err)
	return b
}

func generated(t *testing.T, price float64) estimate.Estimate {
	t.Helper()
	e, err := estimate.NewEstimate("Express", price, "short hop", "Low")
	require.NoError(t, err)
	return e
}

func TestQuoteBook_PublishAndConsume(t *testing.T) {
	ctx := t.Context()
	b := newBook(t)

	ticket, err := b.Reserve(ctx, bruno)
	require.NoError(t, err)
	q, err := b.Publish(ctx, ticket, envelope, generated(t, 18.5), t0)
	require.NoError(t, err)

	used, err := b.Consume(ctx, bruno, q.ID(), t0.Add(time.Minute))

	require.NoError(t, err)
	assert.True(t, used.Estimate().EstimatedPrice().IsEqual(kernel.MustMoney("18.50")))
	assert.True(t, used.IsUsed())

	_, err = b.Consume(ctx, bruno, q.ID(), t0.Add(time.Minute))
	require.ErrorIs(t, err, quote.ErrQuoteIsUsed)
}

func TestQuoteBook_StaleResponseIsDiscarded(t *testing.T) {
	ctx := t.Context()
	b := newBook(t)

	older, err := b.Reserve(ctx, bruno)
	require.NoError(t, err)
	newer, err := b.Reserve(ctx, bruno)
	require.NoError(t, err)

	// the newer request resolves first
	current, err := b.Publish(ctx, newer, envelope, generated(t, 30), t0)
	require.NoError(t, err)

	_, err = b.Publish(ctx, older, envelope, generated(t, 10), t0)
	require.ErrorIs(t, err, quote.ErrQuoteIsSuperseded)

	used, err := b.Consume(ctx, bruno, current.ID(), t0)
	require.NoError(t, err)
	assert.True(t, used.Estimate().EstimatedPrice().IsEqual(kernel.MustMoney("30")))
}

func TestQuoteBook_NewRequestSupersedesPublishedQuote(t *testing.T) {
	ctx := t.Context()
	b := newBook(t)

	ticket, err := b.Reserve(ctx, bruno)
	require.NoError(t, err)
	q, err := b.Publish(ctx, ticket, envelope, generated(t, 18.5), t0)
	require.NoError(t, err)

	_, err = b.Reserve(ctx, bruno)
	require.NoError(t, err)

	_, err = b.Consume(ctx, bruno, q.ID(), t0)
	require.ErrorIs(t, err, quote.ErrQuoteIsSuperseded)
}

func TestQuoteBook_SendersAreIndependent(t *testing.T) {
	ctx := t.Context()
	b := newBook(t)

	brunoTicket, err := b.Reserve(ctx, bruno)
	require.NoError(t, err)
	_, err = b.Reserve(ctx, ana)
	require.NoError(t, err)

	q, err := b.Publish(ctx, brunoTicket, envelope, generated(t, 12), t0)
	require.NoError(t, err)

	_, err = b.Consume(ctx, ana, q.ID(), t0)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	_, err = b.Consume(ctx, bruno, q.ID(), t0)
	require.NoError(t, err)
}

func TestQuoteBook_Expiry(t *testing.T) {
	ctx := t.Context()
	b := newBook(t)

	ticket, err := b.Reserve(ctx, bruno)
	require.NoError(t, err)
	q, err := b.Publish(ctx, ticket, envelope, generated(t, 18.5), t0)
	require.NoError(t, err)

	_, err = b.Consume(ctx, bruno, q.ID(), t0.Add(15*time.Minute))
	require.ErrorIs(t, err, quote.ErrQuoteIsExpired)

	n, err := b.ExpireBefore(ctx, t0.Add(14*time.Minute))
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = b.ExpireBefore(ctx, t0.Add(16*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = b.Consume(ctx, bruno, q.ID(), t0.Add(16*time.Minute))
	require.ErrorIs(t, err, quote.ErrQuoteIsExpired)
}

func TestQuoteBook_SweptQuoteStaysExpired(t *testing.T) {
	ctx := t.Context()
	b := newBook(t)

	ticket, err := b.Reserve(ctx, bruno)
	require.NoError(t, err)
	q, err := b.Publish(ctx, ticket, envelope, generated(t, 18.5), t0)
	require.NoError(t, err)

	n, err := b.ExpireBefore(ctx, t0.Add(20*time.Minute))
	require.NoError(t, err)
	require.Equal(t, 1, n)

	_, err = b.Lookup(ctx, bruno, q.ID(), t0.Add(21*time.Minute))
	require.ErrorIs(t, err, quote.ErrQuoteIsExpired)
	_, err = b.Consume(ctx, bruno, q.ID(), t0.Add(21*time.Minute))
	require.ErrorIs(t, err, quote.ErrQuoteIsExpired)

	// another sender learns nothing about the id
	_, err = b.Consume(ctx, ana, q.ID(), t0.Add(21*time.Minute))
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	// tombstones are dropped after a day and are not counted as expirations
	n, err = b.ExpireBefore(ctx, t0.Add(48*time.Hour))
	require.NoError(t, err)
	assert.Zero(t, n)
	_, err = b.Consume(ctx, bruno, q.ID(), t0.Add(48*time.Hour))
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestQuoteBook_LookupDoesNotConsume(t *testing.T) {
	ctx := t.Context()
	b := newBook(t)

	ticket, err := b.Reserve(ctx, bruno)
	require.NoError(t, err)
	q, err := b.Publish(ctx, ticket, envelope, generated(t, 18.5), t0)
	require.NoError(t, err)

	found, err := b.Lookup(ctx, bruno, q.ID(), t0)
	require.NoError(t, err)
	assert.False(t, found.IsUsed())
	assert.Equal(t, "Documentos", found.Request().Product())

	_, err = b.Consume(ctx, bruno, q.ID(), t0)
	require.NoError(t, err)

	_, err = b.Lookup(ctx, bruno, q.ID(), t0)
	require.ErrorIs(t, err, quote.ErrQuoteIsUsed)
}

func TestNewQuoteBook_RejectsInvalidTTL(t *testing.T) {
	_, err := memory.NewQuoteBook(0)
	require.ErrorIs(t, err, quote.ErrTTLIsInvalid)
}
