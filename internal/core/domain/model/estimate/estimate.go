package estimate

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"levaai/internal/core/domain/model/kernel"
	"levaai/internal/pkg/errs"
	"levaai/internal/pkg/guard"
)

var (
	ErrEstimateIsNotConstructed = errors.New("Estimate must be created via NewEstimate constructor")

	// ErrEstimateUnavailable marks a failed generator call. The gateway
	// recovers from it with Fallback and never hands it to end users.
	ErrEstimateUnavailable = errors.New("estimate is unavailable")

	// ErrSchemaViolation wraps every reason a generated payload is rejected.
	ErrSchemaViolation = errors.New("estimate does not match the expected schema")

	ErrCategoryIsRequired  = errs.NewValueIsRequiredError("category")
	ErrReasoningIsRequired = errs.NewValueIsRequiredError("reasoning")
)

// Well-known categories. The generator is free-form, so any non-blank
// category is accepted.
const (
	CategoryExpress  = "Express"
	CategoryStandard = "Standard"
	CategoryHeavy    = "Heavy"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// ParseRiskLevel matches case-insensitively and returns the canonical spelling.
func ParseRiskLevel(s string) (RiskLevel, error) {
	for _, r := range []RiskLevel{RiskLow, RiskMedium, RiskHigh} {
		if strings.EqualFold(strings.TrimSpace(s), string(r)) {
			return r, nil
		}
	}
	return "", errs.NewValueIsInvalidErrorWithCause("riskLevel", fmt.Errorf("%q is not Low, Medium or High", s))
}

type Provenance string

const (
	ProvenanceGenerated Provenance = "generated"
	ProvenanceFallback  Provenance = "fallback"
)

type Estimate struct { //nolint:recvcheck //using for validation
	category       string
	estimatedPrice kernel.Money
	reasoning      string
	riskLevel      RiskLevel
	provenance     Provenance

	guard guard.ConstructorGuard
}

// NewEstimate validates a generated payload. Any violation is reported as
// ErrSchemaViolation joined with the field errors.
func NewEstimate(category string, estimatedPrice float64, reasoning, riskLevel string) (Estimate, error) {
	e := Estimate{provenance: ProvenanceGenerated, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		e.setCategory(category),
		e.setEstimatedPrice(estimatedPrice),
		e.setReasoning(reasoning),
		e.setRiskLevel(riskLevel),
	); err != nil {
		return Estimate{}, errors.Join(ErrSchemaViolation, err)
	}

	return e, nil
}

// Fallback is the fixed estimate used whenever the generator fails.
func Fallback() Estimate {
	return Estimate{
		category:       CategoryStandard,
		estimatedPrice: kernel.MustMoney("25.00"),
		reasoning:      "Fallback estimate",
		riskLevel:      RiskLow,
		provenance:     ProvenanceFallback,
		guard:          guard.NewConstructorGuard(),
	}
}

func (e Estimate) Validate() error {
	return e.guard.Validate(ErrEstimateIsNotConstructed)
}

func (e Estimate) Category() string             { return e.category }
func (e Estimate) EstimatedPrice() kernel.Money { return e.estimatedPrice }
func (e Estimate) Reasoning() string            { return e.reasoning }
func (e Estimate) RiskLevel() RiskLevel         { return e.riskLevel }
func (e Estimate) Provenance() Provenance       { return e.provenance }
func (e Estimate) IsFallback() bool             { return e.provenance == ProvenanceFallback }

func (e *Estimate) setCategory(category string) error {
	c := strings.TrimSpace(category)
	if c == "" {
		return ErrCategoryIsRequired
	}
	e.category = c
	return nil
}

func (e *Estimate) setEstimatedPrice(price float64) error {
	if !(price > 0) || math.IsInf(price, 1) {
		return errs.NewValueIsInvalidErrorWithCause("estimatedPrice", fmt.Errorf("%v is not a positive amount", price))
	}
	m, err := kernel.MoneyFromFloat(price)
	if err != nil {
		return err
	}
	if !m.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("estimatedPrice", fmt.Errorf("%v rounds to zero", price))
	}
	e.estimatedPrice = m
	return nil
}

func (e *Estimate) setReasoning(reasoning string) error {
	r := strings.TrimSpace(reasoning)
	if r == "" {
		return ErrReasoningIsRequired
	}
	e.reasoning = r
	return nil
}

func (e *Estimate) setRiskLevel(riskLevel string) error {
	r, err := ParseRiskLevel(riskLevel)
	if err != nil {
		return err
	}
	e.riskLevel = r
	return nil
}
