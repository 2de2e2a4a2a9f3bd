package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common/errs"
	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
)

// GetSettings returns the marketplace settings, or the defaults when none were saved yet.
func (u *Usecase) GetSettings(ctx context.Context) (*entity.MarketplaceSettings, error) {
	settings, err := u.auctionDg.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			defaults := entity.DefaultSettings()
			return &defaults, nil
		}
		return nil, errors.Wrap(err, "error during GetSettings")
	}
	return settings, nil
}

func (u *Usecase) UpdateSettings(ctx context.Context, settings entity.MarketplaceSettings) (*entity.MarketplaceSettings, error) {
	if err := settings.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}
	settings.UpdatedAt = u.timestamp()
	if err := u.auctionDg.UpsertSettings(ctx, &settings); err != nil {
		return nil, errors.Wrap(err, "error during UpsertSettings")
	}
	return &settings, nil
}
