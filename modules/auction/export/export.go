// Package export renders settled sales as CSV or parquet files and archives them to S3.
package export

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common/errs"
	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
	"github.com/gaze-network/auction-network/modules/auction/settlement"
)

type Format string

const (
	FormatCSV     Format = "csv"
	FormatParquet Format = "parquet"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatCSV, FormatParquet:
		return f, nil
	case "":
		return FormatCSV, nil
	default:
		return "", errors.Wrapf(errs.Unsupported, "export format %q", s)
	}
}

func (f Format) ContentType() string {
	if f == FormatParquet {
		return "application/vnd.apache.parquet"
	}
	return "text/csv; charset=utf-8"
}

func (f Format) Extension() string {
	return string(f)
}

// Row is one settled sale. Amounts are stored in cents in parquet files.
type Row struct {
	LotNumber    string `parquet:"name=lot_number, type=BYTE_ARRAY, convertedtype=UTF8"`
	Title        string `parquet:"name=title, type=BYTE_ARRAY, convertedtype=UTF8"`
	Category     string `parquet:"name=category, type=BYTE_ARRAY, convertedtype=UTF8"`
	BidderNumber string `parquet:"name=bidder_number, type=BYTE_ARRAY, convertedtype=UTF8"`
	BuyerName    string `parquet:"name=buyer_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	SellerID     string `parquet:"name=seller_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Price        int64  `parquet:"name=price_cents, type=INT64"`
	BuyerPremium int64  `parquet:"name=buyer_premium_cents, type=INT64"`
	Tax          int64  `parquet:"name=tax_cents, type=INT64"`
	Total        int64  `parquet:"name=total_cents, type=INT64"`
	Commission   int64  `parquet:"name=commission_cents, type=INT64"`
	Payout       int64  `parquet:"name=payout_cents, type=INT64"`
}

// NewRows pairs sales with their settlements. lines must be the PerLine output of
// settlement.Aggregate for the same sales.
func NewRows(sales []*entity.Sale, lines []settlement.LineSettlement) ([]Row, error) {
	if len(sales) != len(lines) {
		return nil, errors.Errorf("got %d sales but %d settlements", len(sales), len(lines))
	}
	rows := make([]Row, 0, len(sales))
	for i, sale := range sales {
		line := lines[i]
		if line.ID != sale.ID {
			return nil, errors.Errorf("settlement %s does not belong to sale %s", line.ID, sale.ID)
		}
		rows = append(rows, Row{
			LotNumber:    sale.LotNumber,
			Title:        sale.Title,
			Category:     sale.Category,
			BidderNumber: sale.BidderNumber,
			BuyerName:    sale.BuyerName,
			SellerID:     sale.SellerID,
			Price:        line.Price.Cents(),
			BuyerPremium: line.BuyerPremium.Cents(),
			Tax:          line.Tax.Cents(),
			Total:        line.Total.Cents(),
			Commission:   line.Commission.Cents(),
			Payout:       line.Payout.Cents(),
		})
	}
	return rows, nil
}
