// Package verification holds the document check used for driver
// registration. The simulated service stands in for a real KYC provider.
package verification

import (
	"context"
	"time"
	"unicode"

	"levaai/internal/core/domain/model/kernel"
	"levaai/internal/core/domain/model/user"
	"levaai/internal/core/ports"

	"github.com/rs/zerolog"
)

var _ ports.VerificationService = (*SimulatedService)(nil)

const DefaultDelay = 2 * time.Second

const cpfDigits = 11

// SimulatedService waits for delay and approves any submission whose CPF has
// eleven digits.
type SimulatedService struct {
	delay  time.Duration
	logger zerolog.Logger
}

func NewSimulatedService(delay time.Duration, logger zerolog.Logger) *SimulatedService {
	if delay < 0 {
		delay = DefaultDelay
	}
	return &SimulatedService{
		delay:  delay,
		logger: logger.With().Str("component", "verification").Logger(),
	}
}

func (s *SimulatedService) Verify(ctx context.Context, userID kernel.UserID, details user.DriverDetails) (ports.VerificationResult, error) {
	if err := details.Validate(); err != nil {
		return ports.VerificationResult{}, err
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ports.VerificationResult{}, ctx.Err()
	case <-timer.C:
	}

	result := ports.VerificationResult{Approved: true}
	if countDigits(details.CPF()) != cpfDigits {
		result = ports.VerificationResult{Reason: "CPF must have 11 digits"}
	}

	s.logger.Info().
		Str("user_id", userID.String()).
		Str("vehicle_plate", details.VehiclePlate()).
		Bool("approved", result.Approved).
		Str("reason", result.Reason).
		Msg("documents checked")
	return result, nil
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
