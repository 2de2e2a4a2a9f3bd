package settlement

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common/errs"
	"github.com/shopspring/decimal"
)

// Rates is the event-level rate configuration, in percent.
type Rates struct {
	CommissionRate decimal.Decimal `json:"commissionRate"`
	TaxRate        decimal.Decimal `json:"taxRate"`
	BuyersPremium  decimal.Decimal `json:"buyersPremium"`
}

func (r Rates) Validate() error {
	if err := ValidateRate("commissionRate", r.CommissionRate); err != nil {
		return err
	}
	if err := ValidateRate("taxRate", r.TaxRate); err != nil {
		return err
	}
	return ValidateRate("buyersPremium", r.BuyersPremium)
}

func (r Rates) Equal(other Rates) bool {
	return r.CommissionRate.Equal(other.CommissionRate) &&
		r.TaxRate.Equal(other.TaxRate) &&
		r.BuyersPremium.Equal(other.BuyersPremium)
}

// Policy holds the jurisdiction-dependent settlement switches. The zero value taxes
// the hammer price only and does not net tax out of the seller payout.
type Policy struct {
	// TaxOnPremium applies the tax rate to price + buyer's premium.
	TaxOnPremium bool `mapstructure:"tax_on_premium" json:"taxOnPremium"`

	// NetTaxFromPayout deducts the sales tax from the seller payout as well as the commission.
	NetTaxFromPayout bool `mapstructure:"net_tax_from_payout" json:"netTaxFromPayout"`
}

// SettledLineItem is a sale price broken down into every derived amount.
type SettledLineItem struct {
	Price        Money `json:"price"`
	Commission   Money `json:"commission"`
	BuyerPremium Money `json:"buyerPremium"`
	Tax          Money `json:"tax"`
	Total        Money `json:"total"`  // owed by the buyer
	Payout       Money `json:"payout"` // owed to the seller
}

// Settle computes the settlement of a single hammer price. It is pure.
func Settle(price Money, rates Rates, policy Policy) (SettledLineItem, error) {
	if price.IsNegative() {
		return SettledLineItem{}, errors.Wrapf(errs.InvalidArgument, "price must not be negative, got %s", price)
	}
	if err := rates.Validate(); err != nil {
		return SettledLineItem{}, err
	}

	commission, err := ApplyRate(price, rates.CommissionRate)
	if err != nil {
		return SettledLineItem{}, errors.Wrap(err, "commission")
	}
	premium, err := ApplyRate(price, rates.BuyersPremium)
	if err != nil {
		return SettledLineItem{}, errors.Wrap(err, "buyer premium")
	}

	taxBase := price
	if policy.TaxOnPremium {
		if taxBase, err = Add(price, premium); err != nil {
			return SettledLineItem{}, errors.Wrap(err, "tax base")
		}
	}
	tax, err := ApplyRate(taxBase, rates.TaxRate)
	if err != nil {
		return SettledLineItem{}, errors.Wrap(err, "tax")
	}

	total, err := Sum(price, premium, tax)
	if err != nil {
		return SettledLineItem{}, errors.Wrap(err, "total")
	}

	// commission and tax are at most price and price + premium, so the payout cannot wrap.
	payout := price - commission
	if policy.NetTaxFromPayout {
		payout -= tax
	}

	return SettledLineItem{
		Price:        price,
		Commission:   commission,
		BuyerPremium: premium,
		Tax:          tax,
		Total:        total,
		Payout:       payout,
	}, nil
}
