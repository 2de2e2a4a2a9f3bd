package entity

import (
	"testing"

	"github.com/gaze-network/auction-network/common/errs"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSettingsValidate(t *testing.T) {
	valid := MarketplaceSettings{
		BusinessName: "Lone Star Auctions",
		Email:        "office@lonestar.example",
		Phone:        "(512) 555-0147",
		Zip:          "78701",
		DefaultRates: DefaultRates(),
	}
	assert.NoError(t, valid.Validate())

	testCases := map[string]func(s *MarketplaceSettings){
		"short_name":   func(s *MarketplaceSettings) { s.BusinessName = "L" },
		"bad_email":    func(s *MarketplaceSettings) { s.Email = "office" },
		"short_phone":  func(s *MarketplaceSettings) { s.Phone = "555-0147" },
		"short_zip":    func(s *MarketplaceSettings) { s.Zip = "787" },
		"rate_too_big": func(s *MarketplaceSettings) { s.DefaultRates.TaxRate = decimal.NewFromInt(101) },
	}
	for name, mutate := range testCases {
		t.Run(name, func(t *testing.T) {
			settings := valid
			mutate(&settings)
			assert.ErrorIs(t, settings.Validate(), errs.InvalidArgument)
		})
	}
}

func TestParticipantValidate(t *testing.T) {
	participant := Participant{Name: "Dana Whitfield", Email: "dana@example.com", Role: ParticipantRoleCosigner}
	assert.NoError(t, participant.Validate())
	assert.True(t, participant.Role.Sells())

	participant.Email = "Dana <dana@example.com>"
	assert.ErrorIs(t, participant.Validate(), errs.InvalidArgument)

	participant.Email = "dana@example.com"
	participant.Role = "auctioneer"
	assert.ErrorIs(t, participant.Validate(), errs.InvalidArgument)
}
