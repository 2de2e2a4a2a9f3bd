package entity

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common/errs"
	"github.com/gaze-network/auction-network/modules/auction/settlement"
	"github.com/shopspring/decimal"
)

type MarketplaceSettings struct {
	BusinessName string           `json:"businessName"`
	Email        string           `json:"email"`
	Phone        string           `json:"phone"`
	Website      string           `json:"website"`
	Address      string           `json:"address"`
	City         string           `json:"city"`
	State        string           `json:"state"`
	Zip          string           `json:"zip"`
	LogoURL      string           `json:"logoUrl"`
	DefaultRates settlement.Rates `json:"defaultRates"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// DefaultRates are used until the marketplace settings are saved.
func DefaultRates() settlement.Rates {
	return settlement.Rates{
		TaxRate:        decimal.RequireFromString("8.25"),
		CommissionRate: decimal.NewFromInt(10),
		BuyersPremium:  decimal.NewFromInt(15),
	}
}

func DefaultSettings() MarketplaceSettings {
	return MarketplaceSettings{
		BusinessName: "Auction Marketplace",
		DefaultRates: DefaultRates(),
	}
}

const (
	minBusinessNameLength = 2
	minPhoneDigits        = 10
	minZipLength          = 5
)

func (s MarketplaceSettings) Validate() error {
	var errList []error
	if len(strings.TrimSpace(s.BusinessName)) < minBusinessNameLength {
		errList = append(errList, errors.Errorf("business name must be at least %d characters", minBusinessNameLength))
	}
	if err := validateEmail(s.Email); err != nil {
		errList = append(errList, err)
	}
	if countDigits(s.Phone) < minPhoneDigits {
		errList = append(errList, errors.Errorf("phone must have at least %d digits", minPhoneDigits))
	}
	if len(strings.TrimSpace(s.Zip)) < minZipLength {
		errList = append(errList, errors.Errorf("zip must be at least %d characters", minZipLength))
	}
	if err := s.DefaultRates.Validate(); err != nil {
		errList = append(errList, err)
	}
	if len(errList) > 0 {
		return errs.WithKind(errors.Join(errList...), errs.InvalidArgument)
	}
	return nil
}
