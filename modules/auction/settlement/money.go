package settlement

import (
	"encoding/json"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common/errs"
	"github.com/shopspring/decimal"
)

// minorUnitExp is the exponent of one minor unit (cent).
const minorUnitExp = -2

var maxMoney = decimal.NewFromInt(math.MaxInt64).Shift(minorUnitExp)

// Money is an amount in currency minor units (cents).
// It is encoded as a fixed two-decimal string, e.g. "615.00".
type Money int64

// FromDecimal converts a decimal amount to Money, rounding half away from zero to the minor unit.
func FromDecimal(d decimal.Decimal) Money {
	return Money(d.Round(-minorUnitExp).Shift(-minorUnitExp).IntPart())
}

// ParseMoney parses a decimal string. Amounts finer than one cent are rejected.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, errors.Wrapf(errs.InvalidArgument, "invalid amount %q", s)
	}
	return moneyFromExactDecimal(d)
}

// MustParseMoney is like ParseMoney but panics on error.
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

func moneyFromExactDecimal(d decimal.Decimal) (Money, error) {
	if !d.Equal(d.Round(-minorUnitExp)) {
		return 0, errors.Wrapf(errs.InvalidArgument, "amount %s has more than two decimal places", d)
	}
	if d.Abs().GreaterThan(maxMoney) {
		return 0, errors.Wrapf(errs.InvalidArgument, "amount %s is out of range", d)
	}
	return FromDecimal(d), nil
}

// Decimal returns the amount in major units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), minorUnitExp)
}

func (m Money) String() string {
	return m.Decimal().StringFixed(-minorUnitExp)
}

// Cents returns the amount in minor units.
func (m Money) Cents() int64 {
	return int64(m)
}

func (m Money) IsNegative() bool {
	return m < 0
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts both a JSON string ("12.50") and a JSON number (12.5).
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return errors.Wrapf(errs.InvalidArgument, "invalid amount %s", string(data))
	}
	money, err := moneyFromExactDecimal(d)
	if err != nil {
		return err
	}
	*m = money
	return nil
}

// Add returns a + b. A result that does not fit in Money is an errs.InvalidArgument, never a wrapped value.
func Add(a, b Money) (Money, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, errors.Wrapf(errs.InvalidArgument, "amount out of range: %s + %s", a, b)
	}
	return a + b, nil
}

// Sum adds amounts with Add. Integer addition makes the result independent of order.
func Sum(amounts ...Money) (Money, error) {
	var adder Adder
	var total Money
	for _, a := range amounts {
		adder.Add(&total, a)
	}
	return total, adder.Err()
}

// Adder accumulates into several running totals and keeps the first overflow.
// Once an overflow is recorded, further Add calls are no-ops.
type Adder struct {
	err error
}

func (a *Adder) Add(total *Money, amount Money) {
	if a.err != nil {
		return
	}
	sum, err := Add(*total, amount)
	if err != nil {
		a.err = err
		return
	}
	*total = sum
}

func (a *Adder) Err() error {
	return a.err
}
