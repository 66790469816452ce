package memory

import (
	"context"
	"sync"
	"time"

	"levaai/internal/core/domain/model/estimate"
	"levaai/internal/core/domain/model/kernel"
	"levaai/internal/core/domain/model/quote"
	"levaai/internal/pkg/errs"
)

// tombstoneRetention bounds how long a swept quote id keeps answering as expired.
const tombstoneRetention = 24 * time.Hour

type tombstone struct {
	senderID  kernel.UserID
	expiresAt time.Time
}

// QuoteBook keeps the latest ticket and current quote per sender. Swept quotes
// leave a tombstone, so confirming one still reports it as expired.
type QuoteBook struct {
	mu  sync.Mutex
	ttl time.Duration

	seq     uint64
	latest  map[string]uint64
	current map[string]kernel.UUID
	quotes  map[string]*quote.Quote
	swept   map[string]tombstone
}

func NewQuoteBook(ttl time.Duration) (*QuoteBook, error) {
	if ttl <= 0 {
		return nil, quote.ErrTTLIsInvalid
	}
	return &QuoteBook{
		ttl:     ttl,
		latest:  make(map[string]uint64),
		current: make(map[string]kernel.UUID),
		quotes:  make(map[string]*quote.Quote),
		swept:   make(map[string]tombstone),
	}, nil
}

func (b *QuoteBook) Reserve(_ context.Context, senderID kernel.UserID) (quote.Ticket, error) {
	if err := senderID.Validate(); err != nil {
		return quote.Ticket{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.seq++
	b.latest[senderID.String()] = b.seq
	delete(b.current, senderID.String())
	return quote.NewTicket(senderID, b.seq), nil
}

func (b *QuoteBook) Publish(
	_ context.Context,
	ticket quote.Ticket,
	req estimate.Request,
	est estimate.Estimate,
	now time.Time,
) (*quote.Quote, error) {
	sender := ticket.SenderID().String()

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.latest[sender] != ticket.Seq() {
		return nil, quote.ErrQuoteIsSuperseded
	}

	q, err := quote.NewQuote(kernel.NewUUID(), ticket.SenderID(), req, est, now, b.ttl)
	if err != nil {
		return nil, err
	}
	b.quotes[q.ID().String()] = q
	b.current[sender] = q.ID()
	return q.Clone(), nil
}

func (b *QuoteBook) Lookup(_ context.Context, senderID kernel.UserID, quoteID kernel.UUID, now time.Time) (*quote.Quote, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	q, err := b.usable(senderID, quoteID, now)
	if err != nil {
		return nil, err
	}
	return q.Clone(), nil
}

func (b *QuoteBook) Consume(_ context.Context, senderID kernel.UserID, quoteID kernel.UUID, now time.Time) (*quote.Quote, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	q, err := b.usable(senderID, quoteID, now)
	if err != nil {
		return nil, err
	}
	if err = q.Use(now); err != nil {
		return nil, err
	}
	return q.Clone(), nil
}

// usable finds the sender's quote and checks it can still price an order.
// Callers hold b.mu.
func (b *QuoteBook) usable(senderID kernel.UserID, quoteID kernel.UUID, now time.Time) (*quote.Quote, error) {
	q, ok := b.quotes[quoteID.String()]
	if !ok {
		if ts, isSwept := b.swept[quoteID.String()]; isSwept && ts.senderID.IsEqual(senderID) {
			return nil, quote.ErrQuoteIsExpired
		}
		return nil, errs.NewObjectNotFoundError("quote", quoteID.String())
	}
	if !q.SenderID().IsEqual(senderID) {
		return nil, errs.NewObjectNotFoundError("quote", quoteID.String())
	}

	if q.IsUsed() {
		return nil, quote.ErrQuoteIsUsed
	}
	if current, isCurrent := b.current[senderID.String()]; !isCurrent || !current.IsEqual(quoteID) {
		return nil, quote.ErrQuoteIsSuperseded
	}
	if q.IsExpired(now) {
		return nil, quote.ErrQuoteIsExpired
	}
	return q, nil
}

func (b *QuoteBook) ExpireBefore(_ context.Context, now time.Time) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	expired := 0
	for id, q := range b.quotes {
		if !q.IsExpired(now) {
			continue
		}
		delete(b.quotes, id)
		b.swept[id] = tombstone{senderID: q.SenderID(), expiresAt: q.ExpiresAt()}
		sender := q.SenderID().String()
		if current, ok := b.current[sender]; ok && current.IsEqual(q.ID()) {
			delete(b.current, sender)
		}
		expired++
	}

	for id, ts := range b.swept {
		if now.Sub(ts.expiresAt) > tombstoneRetention {
			delete(b.swept, id)
		}
	}
	return expired, nil
}
