package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/modules/auction/export"
)

// ExportEventSales encodes every settled sale of the event in the requested format.
func (u *Usecase) ExportEventSales(ctx context.Context, eventID string, format export.Format) ([]byte, error) {
	event, err := u.auctionDg.GetEvent(ctx, eventID)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetEvent")
	}
	sales, err := u.auctionDg.GetSales(ctx, eventID)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetSales")
	}
	result, err := u.aggregate(event, sales)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	rows, err := export.NewRows(sales, result.PerLine)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	data, err := export.Encode(format, rows)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode %s export", format)
	}
	return data, nil
}
