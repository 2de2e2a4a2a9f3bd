package postgres

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/modules/auction/datagateway"
	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
	"github.com/gaze-network/auction-network/modules/auction/repository/postgres/gen"
	"github.com/samber/lo"
)

func (r *Repository) CreateSellerInvoices(ctx context.Context, invoices []*entity.SellerInvoice) error {
	if len(invoices) == 0 {
		return nil
	}
	if err := r.queries.BatchCreateSellerInvoices(ctx, mapSellerInvoicesTypeToParams(invoices)); err != nil {
		return errors.Wrap(wrapQueryError(err), "failed to create seller invoices")
	}
	return nil
}

func (r *Repository) GetSellerInvoice(ctx context.Context, id string) (*entity.SellerInvoice, error) {
	row, err := r.queries.GetSellerInvoice(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(wrapQueryError(err), "invoice %s", id)
	}
	return lo.ToPtr(mapSellerInvoiceRowToType(row)), nil
}

func (r *Repository) ListSellerInvoices(ctx context.Context, filter datagateway.InvoiceFilter) ([]*entity.SellerInvoice, error) {
	rows, err := r.queries.ListSellerInvoices(ctx, gen.ListSellerInvoicesParams{
		EventID:  filter.EventID,
		SellerID: filter.SellerID,
	})
	if err != nil {
		return nil, wrapQueryError(err)
	}
	return lo.Map(rows, func(row gen.ListSellerInvoicesRow, _ int) *entity.SellerInvoice {
		return lo.ToPtr(mapSellerInvoiceRowToType(gen.GetSellerInvoiceRow(row)))
	}), nil
}

func (r *Repository) UpdateInvoiceStatus(ctx context.Context, id string, status entity.InvoiceStatus, paidAt *time.Time) error {
	rows, err := r.queries.UpdateInvoiceStatus(ctx, gen.UpdateInvoiceStatusParams{
		ID:     id,
		Status: string(status),
		PaidAt: timestamptzFromTimePtr(paidAt),
	})
	return expectAffected(rows, err, "invoice %s", id)
}

func (r *Repository) CreateBuyerStatements(ctx context.Context, statements []*entity.BuyerStatement) error {
	if len(statements) == 0 {
		return nil
	}
	if err := r.queries.BatchCreateBuyerStatements(ctx, mapBuyerStatementsTypeToParams(statements)); err != nil {
		return errors.Wrap(wrapQueryError(err), "failed to create buyer statements")
	}
	return nil
}

func (r *Repository) GetBuyerStatement(ctx context.Context, id string) (*entity.BuyerStatement, error) {
	row, err := r.queries.GetBuyerStatement(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(wrapQueryError(err), "statement %s", id)
	}
	return lo.ToPtr(mapBuyerStatementRowToType(row)), nil
}

func (r *Repository) ListBuyerStatements(ctx context.Context, filter datagateway.StatementFilter) ([]*entity.BuyerStatement, error) {
	rows, err := r.queries.ListBuyerStatements(ctx, gen.ListBuyerStatementsParams{
		EventID: filter.EventID,
		BuyerID: filter.BuyerID,
	})
	if err != nil {
		return nil, wrapQueryError(err)
	}
	return lo.Map(rows, func(row gen.ListBuyerStatementsRow, _ int) *entity.BuyerStatement {
		return lo.ToPtr(mapBuyerStatementRowToType(gen.GetBuyerStatementRow(row)))
	}), nil
}

func (r *Repository) UpdateStatementStatus(ctx context.Context, id string, status entity.StatementStatus, paidAt *time.Time) error {
	rows, err := r.queries.UpdateStatementStatus(ctx, gen.UpdateStatementStatusParams{
		ID:     id,
		Status: string(status),
		PaidAt: timestamptzFromTimePtr(paidAt),
	})
	return expectAffected(rows, err, "statement %s", id)
}
