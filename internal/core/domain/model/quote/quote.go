// Package quote binds a published estimate to the sender who asked for it.
//
// Every estimate request takes a Ticket. Only the newest ticket of a sender may
// publish its estimate as a Quote, so a slow response to an older request can
// never price an order. A quote remembers the parcel it priced and only prices
// an order for that same parcel. It is consumed once, by order creation, and
// expires after a fixed time to live.
package quote

import (
	"errors"
	"time"

	"levaai/internal/core/domain/model/estimate"
	"levaai/internal/core/domain/model/kernel"
	"levaai/internal/pkg/errs"
)

var (
	ErrQuoteIsNotConstructed = errors.New("Quote must be created via NewQuote constructor")
	ErrQuoteIsSuperseded     = errors.New("quote was superseded by a newer estimate request")
	ErrQuoteIsExpired        = errors.New("quote has expired")
	ErrQuoteIsUsed           = errors.New("quote was already used")
	ErrQuoteDoesNotMatch     = errors.New("quote was issued for a different parcel")
	ErrTTLIsInvalid          = errs.NewValueIsInvalidError("quote ttl")
)

// Ticket identifies one estimate request of a sender. Sequence numbers grow
// monotonically per book.
type Ticket struct {
	senderID kernel.UserID
	seq      uint64
}

func NewTicket(senderID kernel.UserID, seq uint64) Ticket {
	return Ticket{senderID: senderID, seq: seq}
}

func (t Ticket) SenderID() kernel.UserID { return t.senderID }
func (t Ticket) Seq() uint64             { return t.seq }

type Quote struct {
	id        kernel.UUID
	senderID  kernel.UserID
	request   estimate.Request
	estimate  estimate.Estimate
	issuedAt  time.Time
	expiresAt time.Time
	used      bool

	isConstructed bool
}

func NewQuote(
	id kernel.UUID,
	senderID kernel.UserID,
	req estimate.Request,
	est estimate.Estimate,
	issuedAt time.Time,
	ttl time.Duration,
) (*Quote, error) {
	if ttl <= 0 {
		return nil, ErrTTLIsInvalid
	}
	if err := errors.Join(id.Validate(), senderID.Validate(), req.Validate(), est.Validate()); err != nil {
		return nil, err
	}

	return &Quote{
		id:            id,
		senderID:      senderID,
		request:       req,
		estimate:      est,
		issuedAt:      issuedAt,
		expiresAt:     issuedAt.Add(ttl),
		isConstructed: true,
	}, nil
}

func (q *Quote) Validate() error {
	if q == nil || !q.isConstructed {
		return ErrQuoteIsNotConstructed
	}
	return nil
}

func (q *Quote) Clone() *Quote {
	c := *q
	return &c
}

func (q *Quote) ID() kernel.UUID             { return q.id }
func (q *Quote) SenderID() kernel.UserID     { return q.senderID }
func (q *Quote) Request() estimate.Request   { return q.request }
func (q *Quote) Estimate() estimate.Estimate { return q.estimate }
func (q *Quote) IssuedAt() time.Time         { return q.issuedAt }
func (q *Quote) ExpiresAt() time.Time        { return q.expiresAt }
func (q *Quote) IsUsed() bool                { return q.used }

// IsExpired reports whether now is at or past the expiry instant.
func (q *Quote) IsExpired(now time.Time) bool {
	return !now.Before(q.expiresAt)
}

// Covers fails with ErrQuoteDoesNotMatch unless parcel describes the goods
// this quote priced.
func (q *Quote) Covers(parcel estimate.Request) error {
	if !q.request.SameParcel(parcel) {
		return ErrQuoteDoesNotMatch
	}
	return nil
}

// Use consumes the quote. It fails for used or expired quotes and leaves the
// quote unchanged.
func (q *Quote) Use(now time.Time) error {
	if q.used {
		return ErrQuoteIsUsed
	}
	if q.IsExpired(now) {
		return ErrQuoteIsExpired
	}
	q.used = true
	return nil
}
