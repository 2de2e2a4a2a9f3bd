package decimals

import (
	"github.com/Cleverse/go-utilities/utils"
	"github.com/shopspring/decimal"
)

const (
	DefaultDivPrecision = 36
)

func init() {
	decimal.DivisionPrecision = DefaultDivPrecision
}

var (
	Zero    = decimal.Zero
	Hundred = decimal.NewFromInt(100)
)

// MustFromString convert string to decimal.Decimal. Panic if error
// string must be a valid number, not NaN, Inf or empty string.
func MustFromString(s string) decimal.Decimal {
	return utils.Must(decimal.NewFromString(s))
}

// PowerOfTen returns 10^n.
func PowerOfTen(n int32) decimal.Decimal {
	return decimal.New(1, n)
}

// Percent returns value * percent / 100 without rounding.
func Percent(value, percent decimal.Decimal) decimal.Decimal {
	return value.Mul(percent).Div(Hundred)
}

// InRange reports whether min <= d <= max.
func InRange(d, min, max decimal.Decimal) bool {
	return d.GreaterThanOrEqual(min) && d.LessThanOrEqual(max)
}
