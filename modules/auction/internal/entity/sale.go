package entity

import (
	"cmp"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common/errs"
	"github.com/gaze-network/auction-network/modules/auction/settlement"
)

// Sale is one sold lot of an event.
type Sale struct {
	ID           string           `json:"id"`
	EventID      string           `json:"eventId"`
	LotNumber    string           `json:"lotNumber"`
	BidderNumber string           `json:"bidderNumber"`
	BuyerID      string           `json:"buyerId,omitempty"`
	BuyerName    string           `json:"buyerName"`
	SellerID     string           `json:"sellerId"`
	Title        string           `json:"title"`
	Category     string           `json:"category"`
	ImageURL     string           `json:"imageUrl,omitempty"`
	Price        settlement.Money `json:"price"`
	CreatedAt    time.Time        `json:"createdAt"`
	InvoicedAt   *time.Time       `json:"invoicedAt,omitempty"`
}

func (s Sale) Validate() error {
	var errList []error
	if strings.TrimSpace(s.LotNumber) == "" {
		errList = append(errList, errors.New("lot number is required"))
	}
	if err := ValidatePaddleNumber(s.BidderNumber); err != nil {
		errList = append(errList, errors.Newf("bidder number %q must be 1 to 6 digits", s.BidderNumber))
	}
	if strings.TrimSpace(s.SellerID) == "" {
		errList = append(errList, errors.New("seller is required"))
	}
	if strings.TrimSpace(s.Title) == "" {
		errList = append(errList, errors.New("title is required"))
	}
	if s.Price.IsNegative() {
		errList = append(errList, errors.New("price must not be negative"))
	}
	if len(errList) > 0 {
		return errs.WithKind(errors.Join(errList...), errs.InvalidArgument)
	}
	return nil
}

func (s Sale) IsInvoiced() bool {
	return s.InvoicedAt != nil
}

// IsSold reports whether the lot found a buyer.
func (s Sale) IsSold() bool {
	return s.Price > 0
}

func (s Sale) LineItem() settlement.LineItem {
	return settlement.LineItem{ID: s.ID, Price: s.Price}
}

// SaleLineItems converts sales into settlement line items, preserving order.
func SaleLineItems(sales []*Sale) []settlement.LineItem {
	items := make([]settlement.LineItem, 0, len(sales))
	for _, sale := range sales {
		items = append(items, sale.LineItem())
	}
	return items
}

// CompareLotNumbers orders lot numbers so that numeric lots sort naturally ("2" before "10").
func CompareLotNumbers(a, b string) int {
	if len(a) != len(b) {
		return cmp.Compare(len(a), len(b))
	}
	return cmp.Compare(a, b)
}
