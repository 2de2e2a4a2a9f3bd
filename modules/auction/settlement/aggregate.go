package settlement

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common/errs"
)

// LineItem is the settlement input for one sold lot.
type LineItem struct {
	ID    string
	Price Money
}

type LineSettlement struct {
	ID string `json:"id"`
	SettledLineItem
}

// EventSettlement is the event-level roll-up of every line settlement.
type EventSettlement struct {
	ItemCount           int              `json:"itemCount"`
	TotalSales          Money            `json:"totalSales"`
	TotalCommission     Money            `json:"totalCommission"`
	TotalBuyerPremium   Money            `json:"totalBuyerPremium"`
	TotalTax            Money            `json:"totalTax"`
	TotalPayout         Money            `json:"totalPayout"`
	MarketplaceEarnings Money            `json:"marketplaceEarnings"` // commission + buyer premium
	GrandTotal          Money            `json:"grandTotal"`          // collected from buyers
	PerLine             []LineSettlement `json:"perLineSettlements"`
}

// Aggregate settles every line item and sums the results.
// Line amounts are rounded before summing, so the totals equal the sum of the
// per-line figures exactly and do not depend on the order of items.
// An invalid item fails the whole call.
func Aggregate(items []LineItem, rates Rates, policy Policy) (EventSettlement, error) {
	if err := rates.Validate(); err != nil {
		return EventSettlement{}, err
	}

	result := EventSettlement{
		ItemCount: len(items),
		PerLine:   make([]LineSettlement, 0, len(items)),
	}
	var adder Adder
	for i, item := range items {
		if item.ID == "" {
			return EventSettlement{}, errors.Wrapf(errs.InvalidArgument, "line item %d: id is required", i)
		}
		settled, err := Settle(item.Price, rates, policy)
		if err != nil {
			return EventSettlement{}, errors.Wrapf(err, "line item %q", item.ID)
		}

		adder.Add(&result.TotalSales, settled.Price)
		adder.Add(&result.TotalCommission, settled.Commission)
		adder.Add(&result.TotalBuyerPremium, settled.BuyerPremium)
		adder.Add(&result.TotalTax, settled.Tax)
		adder.Add(&result.TotalPayout, settled.Payout)
		if err := adder.Err(); err != nil {
			return EventSettlement{}, errors.Wrapf(err, "line item %q", item.ID)
		}
		result.PerLine = append(result.PerLine, LineSettlement{ID: item.ID, SettledLineItem: settled})
	}

	adder.Add(&result.MarketplaceEarnings, result.TotalCommission)
	adder.Add(&result.MarketplaceEarnings, result.TotalBuyerPremium)
	adder.Add(&result.GrandTotal, result.TotalSales)
	adder.Add(&result.GrandTotal, result.TotalBuyerPremium)
	adder.Add(&result.GrandTotal, result.TotalTax)
	if err := adder.Err(); err != nil {
		return EventSettlement{}, errors.Wrap(err, "event totals")
	}
	return result, nil
}
