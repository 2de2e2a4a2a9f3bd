package export

import (
	"bufio"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/modules/auction/settlement"
)

var csvHeader = []string{
	"Lot", "Title", "Category", "Bidder", "Buyer", "Seller",
	"Price", "Buyer Premium", "Tax", "Total", "Commission", "Payout",
}

func (r Row) csvRecord() []string {
	return []string{
		r.LotNumber, r.Title, r.Category, r.BidderNumber, r.BuyerName, r.SellerID,
		settlement.Money(r.Price).String(),
		settlement.Money(r.BuyerPremium).String(),
		settlement.Money(r.Tax).String(),
		settlement.Money(r.Total).String(),
		settlement.Money(r.Commission).String(),
		settlement.Money(r.Payout).String(),
	}
}

// WriteCSV writes a header row and one record per row. Every field is quoted.
func WriteCSV(w io.Writer, rows []Row) error {
	bw := bufio.NewWriter(w)
	if err := writeCSVRecord(bw, csvHeader); err != nil {
		return errors.Wrap(err, "failed to write csv header")
	}
	for _, row := range rows {
		if err := writeCSVRecord(bw, row.csvRecord()); err != nil {
			return errors.Wrapf(err, "failed to write csv record of lot %s", row.LotNumber)
		}
	}
	return errors.WithStack(bw.Flush())
}

func writeCSVRecord(w *bufio.Writer, record []string) error {
	for i, field := range record {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return errors.WithStack(err)
			}
		}
		if _, err := w.WriteString(`"` + strings.ReplaceAll(field, `"`, `""`) + `"`); err != nil {
			return errors.WithStack(err)
		}
	}
	_, err := w.WriteString("\r\n")
	return errors.WithStack(err)
}
