package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
)

func (r *Repository) GetSettings(ctx context.Context) (*entity.MarketplaceSettings, error) {
	model, err := r.queries.GetSettings(ctx)
	if err != nil {
		return nil, errors.Wrap(wrapQueryError(err), "settings")
	}
	settings, err := mapSettingsModelToType(model)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &settings, nil
}

func (r *Repository) UpsertSettings(ctx context.Context, settings *entity.MarketplaceSettings) error {
	if err := r.queries.UpsertSettings(ctx, mapSettingsTypeToParams(*settings)); err != nil {
		return wrapQueryError(err)
	}
	return nil
}
