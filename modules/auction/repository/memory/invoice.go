package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common/errs"
	"github.com/gaze-network/auction-network/modules/auction/datagateway"
	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
)

func (r *Repository) CreateSellerInvoices(ctx context.Context, invoices []*entity.SellerInvoice) error {
	created := make([]entity.SellerInvoice, 0, len(invoices))
	for _, invoice := range invoices {
		created = append(created, *invoice)
	}
	return r.write(func(s *store) error {
		for _, invoice := range created {
			if _, ok := s.invoices[invoice.ID]; ok {
				return errors.Wrapf(errs.Conflict, "invoice %s already exists", invoice.ID)
			}
		}
		for _, invoice := range created {
			s.invoices[invoice.ID] = invoice
		}
		return nil
	})
}

func (r *Repository) GetSellerInvoice(ctx context.Context, id string) (*entity.SellerInvoice, error) {
	var (
		invoice entity.SellerInvoice
		ok      bool
	)
	r.read(func(s *store) { invoice, ok = s.invoices[id] })
	if !ok {
		return nil, errors.Wrapf(errs.NotFound, "invoice %s", id)
	}
	return &invoice, nil
}

func (r *Repository) ListSellerInvoices(ctx context.Context, filter datagateway.InvoiceFilter) ([]*entity.SellerInvoice, error) {
	invoices := make([]*entity.SellerInvoice, 0)
	r.read(func(s *store) {
		for _, invoice := range s.invoices {
			if (filter.EventID != "" && invoice.EventID != filter.EventID) ||
				(filter.SellerID != "" && invoice.SellerID != filter.SellerID) {
				continue
			}
			invoice := invoice
			invoices = append(invoices, &invoice)
		}
	})
	slices.SortFunc(invoices, func(a, b *entity.SellerInvoice) int {
		if c := b.IssuedAt.Compare(a.IssuedAt); c != 0 {
			return c
		}
		return strings.Compare(a.SellerID, b.SellerID)
	})
	return invoices, nil
}

func (r *Repository) UpdateInvoiceStatus(ctx context.Context, id string, status entity.InvoiceStatus, paidAt *time.Time) error {
	return r.write(func(s *store) error {
		invoice, ok := s.invoices[id]
		if !ok {
			return errors.Wrapf(errs.NotFound, "invoice %s", id)
		}
		invoice.Status = status
		invoice.PaidAt = paidAt
		s.invoices[id] = invoice
		return nil
	})
}

func (r *Repository) CreateBuyerStatements(ctx context.Context, statements []*entity.BuyerStatement) error {
	created := make([]entity.BuyerStatement, 0, len(statements))
	for _, statement := range statements {
		created = append(created, *statement)
	}
	return r.write(func(s *store) error {
		for _, statement := range created {
			if _, ok := s.statements[statement.ID]; ok {
				return errors.Wrapf(errs.Conflict, "statement %s already exists", statement.ID)
			}
		}
		for _, statement := range created {
			s.statements[statement.ID] = statement
		}
		return nil
	})
}

func (r *Repository) GetBuyerStatement(ctx context.Context, id string) (*entity.BuyerStatement, error) {
	var (
		statement entity.BuyerStatement
		ok        bool
	)
	r.read(func(s *store) { statement, ok = s.statements[id] })
	if !ok {
		return nil, errors.Wrapf(errs.NotFound, "statement %s", id)
	}
	return &statement, nil
}

func (r *Repository) ListBuyerStatements(ctx context.Context, filter datagateway.StatementFilter) ([]*entity.BuyerStatement, error) {
	statements := make([]*entity.BuyerStatement, 0)
	r.read(func(s *store) {
		for _, statement := range s.statements {
			if (filter.EventID != "" && statement.EventID != filter.EventID) ||
				(filter.BuyerID != "" && statement.BuyerID != filter.BuyerID) {
				continue
			}
			statement := statement
			statements = append(statements, &statement)
		}
	})
	slices.SortFunc(statements, func(a, b *entity.BuyerStatement) int {
		if c := b.IssuedAt.Compare(a.IssuedAt); c != 0 {
			return c
		}
		return entity.CompareLotNumbers(a.BidderNumber, b.BidderNumber)
	})
	return statements, nil
}

func (r *Repository) UpdateStatementStatus(ctx context.Context, id string, status entity.StatementStatus, paidAt *time.Time) error {
	return r.write(func(s *store) error {
		statement, ok := s.statements[id]
		if !ok {
			return errors.Wrapf(errs.NotFound, "statement %s", id)
		}
		statement.Status = status
		statement.PaidAt = paidAt
		s.statements[id] = statement
		return nil
	})
}
