package memory

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common/errs"
	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
)

func (r *Repository) GetSettings(ctx context.Context) (*entity.MarketplaceSettings, error) {
	var settings *entity.MarketplaceSettings
	r.read(func(s *store) {
		if s.settings != nil {
			copied := *s.settings
			settings = &copied
		}
	})
	if settings == nil {
		return nil, errors.Wrap(errs.NotFound, "marketplace settings")
	}
	return settings, nil
}

func (r *Repository) UpsertSettings(ctx context.Context, settings *entity.MarketplaceSettings) error {
	upserted := *settings
	return r.write(func(s *store) error {
		s.settings = &upserted
		return nil
	})
}
