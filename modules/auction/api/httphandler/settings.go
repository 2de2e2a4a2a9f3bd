package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common"
	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
	"github.com/gaze-network/auction-network/modules/auction/settlement"
	"github.com/gofiber/fiber/v2"
)

type settingsResult struct {
	entity.MarketplaceSettings
	Policy settlement.Policy `json:"policy"`
}

type getSettingsResponse = common.HttpResponse[settingsResult]

func (h *HttpHandler) GetSettings(ctx *fiber.Ctx) (err error) {
	settings, err := h.usecase.GetSettings(ctx.UserContext())
	if err != nil {
		return errors.Wrap(err, "error during GetSettings")
	}

	resp := getSettingsResponse{
		Result: &settingsResult{
			MarketplaceSettings: *settings,
			Policy:              h.usecase.Policy(),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}

type updateSettingsRequest struct {
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
}

type updateSettingsResponse = common.HttpResponse[entity.MarketplaceSettings]

func (h *HttpHandler) UpdateSettings(ctx *fiber.Ctx) (err error) {
	var req updateSettingsRequest
	if err := parseBody(ctx, &req); err != nil {
		return errors.WithStack(err)
	}

	settings, err := h.usecase.UpdateSettings(ctx.UserContext(), entity.MarketplaceSettings{
		BusinessName: req.BusinessName,
		Email:        req.Email,
		Phone:        req.Phone,
		Website:      req.Website,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Zip:          req.Zip,
		LogoURL:      req.LogoURL,
		DefaultRates: req.DefaultRates,
	})
	if err != nil {
		return errors.Wrap(err, "error during UpdateSettings")
	}

	return errors.WithStack(ctx.JSON(updateSettingsResponse{Result: settings}))
}
