package kernel

import (
	"errors"
	"fmt"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var (
	// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
	ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney or ZeroMoney")

	// ErrCurrencyMismatch is returned when combining amounts of different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

// Money is a non-negative decimal amount in a single ISO 4217 currency.
// Prices captured on order lines and derived order totals are Money values.
type Money struct { //nolint:recvcheck //using for validation
	amount   decimal.Decimal
	currency currency.Unit

	guard guard.ConstructorGuard
}

// NewMoney validates and creates a Money value.
//
// Example:
//
//	price, err := kernel.NewMoney(decimal.NewFromInt(10000), currency.KRW)
func NewMoney(amount decimal.Decimal, cur currency.Unit) (Money, error) {
	m := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(m.setAmount(amount), m.setCurrency(cur)); err != nil {
		return Money{}, err
	}

	return m, nil
}

// ZeroMoney returns a zero amount in cur.
func ZeroMoney(cur currency.Unit) Money {
	return Money{
		amount:   decimal.Zero,
		currency: cur,
		guard:    guard.NewConstructorGuard(),
	}
}

// ParseCurrency resolves an ISO 4217 code such as "KRW" or "USD".
func ParseCurrency(code string) (currency.Unit, error) {
	cur, err := currency.ParseISO(code)
	if err != nil {
		return currency.Unit{}, errs.NewValueIsInvalidErrorWithCause("currency", err)
	}
	return cur, nil
}

func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) Currency() currency.Unit {
	return m.currency
}

// Multiply returns m scaled by factor. Negative factors are rejected.
func (m Money) Multiply(factor int) (Money, error) {
	if factor < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"factor is invalid",
			fmt.Errorf("%d is negative", factor),
		)
	}

	return Money{
		amount:   m.amount.Mul(decimal.NewFromInt(int64(factor))),
		currency: m.currency,
		guard:    m.guard,
	}, nil
}

// Add returns the sum of m and other. Both must share a currency.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.currency, other.currency)
	}

	return Money{
		amount:   m.amount.Add(other.amount),
		currency: m.currency,
		guard:    m.guard,
	}, nil
}

// MustAdd is Add for callers that already enforce a single currency.
// It panics on a currency mismatch.
func (m Money) MustAdd(other Money) Money {
	sum, err := m.Add(other)
	if err != nil {
		panic(err)
	}
	return sum
}

// IsEqual compares amounts numerically, so 10000 and 10000.00 are equal.
func (m Money) IsEqual(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.String(), m.currency)
}

func (m *Money) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s is negative", amount),
		)
	}
	m.amount = amount
	return nil
}

func (m *Money) setCurrency(cur currency.Unit) error {
	if cur == (currency.Unit{}) {
		return errs.NewValueIsRequiredError("currency")
	}
	m.currency = cur
	return nil
}
