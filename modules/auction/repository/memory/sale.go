package memory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common/errs"
	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
)

// compareLots orders the sales of one event by lot number.
func compareLots(a, b *entity.Sale) int {
	return cmp.Or(
		entity.CompareLotNumbers(a.LotNumber, b.LotNumber),
		cmp.Compare(a.ID, b.ID),
	)
}

// compareRecorded orders sales of any events by when they were recorded.
func compareRecorded(a, b *entity.Sale) int {
	return cmp.Or(
		a.CreatedAt.Compare(b.CreatedAt),
		cmp.Compare(a.EventID, b.EventID),
		compareLots(a, b),
	)
}

func (r *Repository) GetSales(ctx context.Context, eventID string) ([]*entity.Sale, error) {
	sales := make([]*entity.Sale, 0)
	r.read(func(s *store) {
		for _, sale := range s.sales {
			if sale.EventID == eventID {
				sale := sale
				sales = append(sales, &sale)
			}
		}
	})
	slices.SortFunc(sales, compareLots)
	return sales, nil
}

func (r *Repository) GetSale(ctx context.Context, id string) (*entity.Sale, error) {
	var (
		sale entity.Sale
		ok   bool
	)
	r.read(func(s *store) { sale, ok = s.sales[id] })
	if !ok {
		return nil, errors.Wrapf(errs.NotFound, "sale %s", id)
	}
	return &sale, nil
}

func (r *Repository) ListSalesByBuyer(ctx context.Context, buyerID string) ([]*entity.Sale, error) {
	sales := make([]*entity.Sale, 0)
	r.read(func(s *store) {
		for _, sale := range s.sales {
			if sale.BuyerID == buyerID {
				sale := sale
				sales = append(sales, &sale)
			}
		}
	})
	slices.SortFunc(sales, compareRecorded)
	return sales, nil
}

func (r *Repository) AddSale(ctx context.Context, sale *entity.Sale) error {
	added := *sale
	return r.write(func(s *store) error {
		if _, ok := s.sales[added.ID]; ok {
			return errors.Wrapf(errs.Conflict, "sale %s already exists", added.ID)
		}
		for _, other := range s.sales {
			if other.EventID == added.EventID && other.LotNumber == added.LotNumber {
				return errors.Wrapf(errs.Conflict, "lot %s is already sold in event %s", added.LotNumber, added.EventID)
			}
		}
		s.sales[added.ID] = added
		return nil
	})
}

func (r *Repository) DeleteSale(ctx context.Context, id string) error {
	return r.write(func(s *store) error {
		if _, ok := s.sales[id]; !ok {
			return errors.Wrapf(errs.NotFound, "sale %s", id)
		}
		delete(s.sales, id)
		return nil
	})
}

func (r *Repository) MarkSalesInvoiced(ctx context.Context, eventID string, invoicedAt time.Time) error {
	return r.write(func(s *store) error {
		for id, sale := range s.sales {
			if sale.EventID == eventID && sale.InvoicedAt == nil {
				at := invoicedAt
				sale.InvoicedAt = &at
				s.sales[id] = sale
			}
		}
		return nil
	})
}
