// Package estimates wraps the estimate provider with the policy the rest of
// the application relies on: a per-attempt timeout, retries with exponential
// backoff for transient failures, and a fixed fallback. Gateway.Estimate
// always returns a usable estimate; whether it was generated or is the
// fallback is recorded in its provenance and in the log.
package estimates

import (
	"context"
	"errors"
	"time"

	"levaai/internal/core/domain/model/estimate"
	"levaai/internal/core/ports"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

type Config struct {
	Timeout         time.Duration // per attempt
	MaxRetries      uint64        // retries after the first attempt
	InitialInterval time.Duration
	DefaultDistance string
}

func DefaultConfig() Config {
	return Config{
		Timeout:         10 * time.Second,
		MaxRetries:      2,
		InitialInterval: 500 * time.Millisecond,
		DefaultDistance: "5.2km",
	}
}

type Gateway struct {
	provider ports.EstimateProvider
	cfg      Config
	logger   zerolog.Logger
}

func NewGateway(provider ports.EstimateProvider, cfg Config, logger zerolog.Logger) *Gateway {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if cfg.InitialInterval <= 0 {
		cfg.InitialInterval = DefaultConfig().InitialInterval
	}
	return &Gateway{
		provider: provider,
		cfg:      cfg,
		logger:   logger.With().Str("component", "estimate_gateway").Logger(),
	}
}

// Estimate never fails. Schema violations, non-retryable provider errors and
// cancellation are not retried.
func (g *Gateway) Estimate(ctx context.Context, req estimate.Request) estimate.Estimate {
	if err := req.Validate(); err != nil {
		return g.fallback(req, err, 0)
	}
	req = req.WithDefaultDistance(g.cfg.DefaultDistance)

	var (
		result   estimate.Estimate
		attempts int
	)

	operation := func() error {
		attempts++
		callCtx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
		defer cancel()

		e, err := g.provider.Estimate(callCtx, req)
		switch {
		case err == nil:
			if vErr := e.Validate(); vErr != nil {
				return backoff.Permanent(errors.Join(estimate.ErrSchemaViolation, vErr))
			}
			result = e
			return nil
		case errors.Is(err, estimate.ErrSchemaViolation), errors.Is(err, ports.ErrNotRetryable), ctx.Err() != nil:
			return backoff.Permanent(err)
		default:
			return err
		}
	}

	notify := func(err error, wait time.Duration) {
		g.logger.Debug().Err(err).Int("attempt", attempts).Dur("retry_in", wait).
			Str("product", req.Product()).Msg("estimate attempt failed")
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = g.cfg.InitialInterval
	policy.MaxElapsedTime = 0

	err := backoff.RetryNotify(operation, backoff.WithContext(backoff.WithMaxRetries(policy, g.cfg.MaxRetries), ctx), notify)
	if err != nil {
		return g.fallback(req, err, attempts)
	}

	g.logger.Info().
		Str("provenance", string(result.Provenance())).
		Str("category", result.Category()).
		Str("price", result.EstimatedPrice().Decimal().StringFixed(2)).
		Int("attempts", attempts).
		Msg("estimate generated")
	return result
}

func (g *Gateway) fallback(req estimate.Request, cause error, attempts int) estimate.Estimate {
	f := estimate.Fallback()
	g.logger.Warn().
		Err(errors.Join(estimate.ErrEstimateUnavailable, cause)).
		Str("provenance", string(f.Provenance())).
		Str("product", req.Product()).
		Int("attempts", attempts).
		Msg("using fallback estimate")
	return f
}
