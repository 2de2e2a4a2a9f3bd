package postgres

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
	"github.com/gaze-network/auction-network/modules/auction/repository/postgres/gen"
	"github.com/samber/lo"
)

func mapSales(models []gen.AuctionSale) []*entity.Sale {
	return lo.Map(models, func(model gen.AuctionSale, _ int) *entity.Sale {
		return lo.ToPtr(mapSaleModelToType(model))
	})
}

func (r *Repository) GetSales(ctx context.Context, eventID string) ([]*entity.Sale, error) {
	models, err := r.queries.GetSales(ctx, eventID)
	if err != nil {
		return nil, wrapQueryError(err)
	}
	return mapSales(models), nil
}

func (r *Repository) GetSale(ctx context.Context, id string) (*entity.Sale, error) {
	model, err := r.queries.GetSale(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(wrapQueryError(err), "sale %s", id)
	}
	return lo.ToPtr(mapSaleModelToType(model)), nil
}

func (r *Repository) ListSalesByBuyer(ctx context.Context, buyerID string) ([]*entity.Sale, error) {
	models, err := r.queries.ListSalesByBuyer(ctx, textFromString(buyerID))
	if err != nil {
		return nil, wrapQueryError(err)
	}
	return mapSales(models), nil
}

func (r *Repository) AddSale(ctx context.Context, sale *entity.Sale) error {
	if err := r.queries.AddSale(ctx, mapSaleTypeToParams(*sale)); err != nil {
		return errors.Wrapf(wrapQueryError(err), "lot %s in event %s", sale.LotNumber, sale.EventID)
	}
	return nil
}

func (r *Repository) DeleteSale(ctx context.Context, id string) error {
	rows, err := r.queries.DeleteSale(ctx, id)
	return expectAffected(rows, err, "sale %s", id)
}

func (r *Repository) MarkSalesInvoiced(ctx context.Context, eventID string, invoicedAt time.Time) error {
	err := r.queries.MarkSalesInvoiced(ctx, gen.MarkSalesInvoicedParams{
		EventID:    eventID,
		InvoicedAt: timestamptzFromTime(invoicedAt),
	})
	if err != nil {
		return wrapQueryError(err)
	}
	return nil
}
