package kernel

import (
	"fmt"

	"levaai/internal/pkg/errs"
	"levaai/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// moneyPlaces is the number of decimal places kept for BRL amounts.
const moneyPlaces = 2

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney or MoneyFromString")

// Money is a non-negative amount in Brazilian reais, rounded to centavos.
// Arithmetic is done on decimals; floats only appear at the JSON boundary.
//
//	price, _ := kernel.MoneyFromString("18.50")
//	fmt.Println(price) // R$ 18.50
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney rounds amount to two places and rejects negative values.
func NewMoney(amount decimal.Decimal) (Money, error) {
	m := Money{guard: guard.NewConstructorGuard()}
	if err := m.setAmount(amount); err != nil {
		return Money{}, err
	}
	return m, nil
}

// MoneyFromFloat converts a float coming from an external payload (the
// generative estimate, a JSON body) into Money.
func MoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// MoneyFromString parses a decimal string such as "25.00".
func MoneyFromString(amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return NewMoney(d)
}

// MustMoney is MoneyFromString for literals known to be valid; it panics otherwise.
func MustMoney(amount string) Money {
	m, err := MoneyFromString(amount)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Decimal returns the amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount for serialisation. It is exact for two-place values
// within float64 precision.
func (m Money) Float64() float64 {
	return m.amount.InexactFloat64()
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String formats the amount the way the mobile UI shows it.
func (m Money) String() string {
	return fmt.Sprintf("R$ %s", m.amount.StringFixed(moneyPlaces))
}

func (m *Money) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsOutOfRangeError("money", amount.String(), "0.00", "unbounded")
	}
	m.amount = amount.Round(moneyPlaces)
	return nil
}
