package queries

import (
	"context"
	"errors"
	"time"

	"levaai/internal/core/domain/model/estimate"
	"levaai/internal/core/domain/model/kernel"
	"levaai/internal/core/ports"
	"levaai/internal/pkg/guard"
)

var ErrGetEstimateQueryIsNotConstructed = errors.New(
	"GetEstimateQuery must be created via NewGetEstimateQuery constructor",
)

// EstimateGateway always answers, falling back when the generator fails.
type EstimateGateway interface {
	Estimate(ctx context.Context, req estimate.Request) estimate.Estimate
}

type GetEstimateQuery struct {
	senderID kernel.UserID
	request  estimate.Request

	guard guard.ConstructorGuard
}

func NewGetEstimateQuery(senderID kernel.UserID, request estimate.Request) (GetEstimateQuery, error) {
	if err := errors.Join(senderID.Validate(), request.Validate()); err != nil {
		return GetEstimateQuery{}, err
	}
	return GetEstimateQuery{senderID: senderID, request: request, guard: guard.NewConstructorGuard()}, nil
}

func (q GetEstimateQuery) Validate() error {
	return q.guard.Validate(ErrGetEstimateQueryIsNotConstructed)
}

type EstimateResponse struct {
	QuoteID        string
	Category       string
	EstimatedPrice float64
	Reasoning      string
	RiskLevel      string
	Provenance     string
	ExpiresAt      time.Time
}

// GetEstimateQueryHandler prices a prospective shipment and publishes the
// result as the sender's current quote. The quote id is what order creation
// needs. A response that arrives after the sender asked again fails with
// quote.ErrQuoteIsSuperseded; a caller that went away gets its context error.
type GetEstimateQueryHandler struct {
	gateway EstimateGateway
	quotes  ports.QuoteBook
	now     ports.Clock
}

func NewGetEstimateQueryHandler(gateway EstimateGateway, quotes ports.QuoteBook, now ports.Clock) GetEstimateQueryHandler {
	return GetEstimateQueryHandler{gateway: gateway, quotes: quotes, now: now}
}

func (h GetEstimateQueryHandler) Handle(ctx context.Context, query GetEstimateQuery) (EstimateResponse, error) {
	if err := query.Validate(); err != nil {
		return EstimateResponse{}, err
	}

	ticket, err := h.quotes.Reserve(ctx, query.senderID)
	if err != nil {
		return EstimateResponse{}, err
	}

	est := h.gateway.Estimate(ctx, query.request)
	if err = ctx.Err(); err != nil {
		return EstimateResponse{}, err
	}

	q, err := h.quotes.Publish(ctx, ticket, query.request, est, h.now())
	if err != nil {
		return EstimateResponse{}, err
	}

	return EstimateResponse{
		QuoteID:        q.ID().String(),
		Category:       est.Category(),
		EstimatedPrice: est.EstimatedPrice().Float64(),
		Reasoning:      est.Reasoning(),
		RiskLevel:      string(est.RiskLevel()),
		Provenance:     string(est.Provenance()),
		ExpiresAt:      q.ExpiresAt(),
	}, nil
}
