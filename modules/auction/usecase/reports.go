package usecase

import (
	"cmp"
	"context"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
	"github.com/gaze-network/auction-network/modules/auction/settlement"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

const topSalesLimit = 5

func (u *Usecase) GetEventReport(ctx context.Context, eventID string) (*entity.EventReport, error) {
	event, err := u.auctionDg.GetEvent(ctx, eventID)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetEvent")
	}
	sales, err := u.auctionDg.GetSales(ctx, eventID)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetSales")
	}

	report := &entity.EventReport{
		Event:       *event,
		TotalItems:  len(sales),
		SellerCount: len(lo.UniqBy(sales, func(sale *entity.Sale) string { return sale.SellerID })),
	}

	// each goroutine owns its own fields of report
	eg, ectx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		if err := ectx.Err(); err != nil {
			return err
		}
		result, err := u.aggregate(event, sales)
		if err != nil {
			return errors.WithStack(err)
		}
		report.Settlement = result
		return nil
	})
	eg.Go(func() error {
		byCategory, err := salesByCategory(sales)
		if err != nil {
			return errors.WithStack(err)
		}
		report.SalesByCategory = byCategory
		return nil
	})
	eg.Go(func() error {
		sold := lo.Filter(sales, func(sale *entity.Sale, _ int) bool { return sale.IsSold() })
		report.ItemsSold = len(sold)
		if len(sold) > 0 {
			total, err := totalPrice(sold)
			if err != nil {
				return errors.WithStack(err)
			}
			report.AveragePrice = total / settlement.Money(len(sold))
		}
		report.TopSales = topSales(sales, topSalesLimit)
		if len(report.TopSales) > 0 && report.TopSales[0].IsSold() {
			top := report.TopSales[0]
			report.TopSale = &top
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, errors.WithStack(err)
	}
	return report, nil
}

// salesByCategory groups sales by category, highest revenue first. Uncategorized sales
// are reported under "Uncategorized".
func salesByCategory(sales []*entity.Sale) ([]entity.CategorySales, error) {
	groups := lo.GroupBy(sales, func(sale *entity.Sale) string {
		return lo.Ternary(sale.Category == "", "Uncategorized", sale.Category)
	})
	result := make([]entity.CategorySales, 0, len(groups))
	for category, sales := range groups {
		revenue, err := totalPrice(sales)
		if err != nil {
			return nil, errors.Wrapf(err, "category %q", category)
		}
		result = append(result, entity.CategorySales{
			Category: category,
			Count:    len(sales),
			Revenue:  revenue,
		})
	}
	slices.SortFunc(result, func(a, b entity.CategorySales) int {
		if c := cmp.Compare(b.Revenue, a.Revenue); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return result, nil
}

// totalPrice sums hammer prices, failing when the sum does not fit in Money.
func totalPrice(sales []*entity.Sale) (settlement.Money, error) {
	return settlement.Sum(lo.Map(sales, func(sale *entity.Sale, _ int) settlement.Money { return sale.Price })...)
}

func topSales(sales []*entity.Sale, limit int) []entity.Sale {
	sorted := derefAll(sales)
	slices.SortStableFunc(sorted, func(a, b entity.Sale) int {
		return cmp.Compare(b.Price, a.Price)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

func (u *Usecase) GetDashboardSummary(ctx context.Context) (*entity.DashboardSummary, error) {
	events, err := u.auctionDg.ListEvents(ctx, "")
	if err != nil {
		return nil, errors.Wrap(err, "error during ListEvents")
	}
	participants, err := u.auctionDg.ListParticipants(ctx, "")
	if err != nil {
		return nil, errors.Wrap(err, "error during ListParticipants")
	}

	summary := &entity.DashboardSummary{}
	for _, event := range events {
		sales, err := u.auctionDg.GetSales(ctx, event.ID)
		if err != nil {
			return nil, errors.Wrap(err, "error during GetSales")
		}
		summary.TotalSales += len(sales)
		switch event.Status {
		case entity.EventStatusClosed:
			summary.ClosedEventsCount++
			revenue, err := totalPrice(sales)
			if err != nil {
				return nil, errors.WithStack(err)
			}
			if summary.TotalRevenue, err = settlement.Add(summary.TotalRevenue, revenue); err != nil {
				return nil, errors.Wrap(err, "total revenue")
			}
		case entity.EventStatusLive, entity.EventStatusPaused:
			summary.ActiveEvents++
		}
	}

	for _, participant := range participants {
		if !participant.Role.Sells() {
			continue
		}
		enrollments, err := u.auctionDg.ListEnrollmentsByParticipant(ctx, participant.ID)
		if err != nil {
			return nil, errors.Wrap(err, "error during ListEnrollmentsByParticipant")
		}
		if lo.SomeBy(enrollments, func(enrollment *entity.Enrollment) bool {
			return enrollment.Status == entity.EnrollmentStatusApproved
		}) {
			summary.ActiveSellers++
		}
	}
	return summary, nil
}
