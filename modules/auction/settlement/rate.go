package settlement

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common/errs"
	"github.com/gaze-network/auction-network/pkg/decimals"
	"github.com/shopspring/decimal"
)

// ValidateRate checks that a percentage is within [0, 100].
// Rates are plain percents: 10 means 10%.
func ValidateRate(name string, rate decimal.Decimal) error {
	if !decimals.InRange(rate, decimals.Zero, decimals.Hundred) {
		return errors.Wrapf(errs.InvalidArgument, "%s must be between 0 and 100, got %s", name, rate)
	}
	return nil
}

// ApplyRate returns amount * ratePercent / 100 rounded half away from zero to the minor unit.
// A negative amount or a rate outside [0, 100] is rejected, never clamped.
func ApplyRate(amount Money, ratePercent decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return 0, errors.Wrapf(errs.InvalidArgument, "amount must not be negative, got %s", amount)
	}
	if err := ValidateRate("rate", ratePercent); err != nil {
		return 0, err
	}
	return FromDecimal(decimals.Percent(amount.Decimal(), ratePercent)), nil
}
