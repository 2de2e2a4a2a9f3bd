package usecase

import (
	"context"
	"slices"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/modules/auction/datagateway"
	"github.com/gaze-network/auction-network/modules/auction/export"
	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
	"github.com/gaze-network/auction-network/modules/auction/notifier"
	"github.com/gaze-network/auction-network/modules/auction/settlement"
	"github.com/gaze-network/auction-network/pkg/logger"
	"github.com/gaze-network/auction-network/pkg/logger/slogx"
)

type EventPosted struct {
	EventID    string           `json:"eventId"`
	Invoices   int              `json:"invoices"`
	Statements int              `json:"statements"`
	GrandTotal settlement.Money `json:"grandTotal"`
	ArchiveKey string           `json:"archiveKey,omitempty"`
}

// PostEvent closes an ended event and issues one invoice per seller and one statement per
// bidder. Posting a closed event again returns the documents issued the first time.
func (u *Usecase) PostEvent(ctx context.Context, id string) (*entity.PostedDocuments, error) {
	tx, err := u.auctionDg.BeginAuctionTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	event, err := tx.GetEvent(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetEvent")
	}
	from := event.Status
	to, err := from.Apply(entity.EventTransitionPost)
	u.metrics.transition(MachineEvent, string(entity.EventTransitionPost), err)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if from == entity.EventStatusClosed {
		return postedDocuments(ctx, tx, event)
	}

	sales, err := tx.GetSales(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetSales")
	}
	result, err := u.aggregate(event, sales)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	now := u.timestamp()
	event.Status = to
	event.UpdatedAt = now
	invoices, err := buildSellerInvoices(event, sales, result.PerLine, now, u.newID)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	statements, err := buildBuyerStatements(event, sales, result.PerLine, now, u.newID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := tx.CreateSellerInvoices(ctx, invoices); err != nil {
		return nil, errors.Wrap(err, "error during CreateSellerInvoices")
	}
	if err := tx.CreateBuyerStatements(ctx, statements); err != nil {
		return nil, errors.Wrap(err, "error during CreateBuyerStatements")
	}
	if err := tx.MarkSalesInvoiced(ctx, id, now); err != nil {
		return nil, errors.Wrap(err, "error during MarkSalesInvoiced")
	}
	if err := tx.UpdateEventStatus(ctx, id, to, now); err != nil {
		return nil, errors.Wrap(err, "error during UpdateEventStatus")
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to commit transaction")
	}

	logger.InfoContext(ctx, "Posted event",
		slogx.EventID(id),
		slogx.Int("invoices", len(invoices)),
		slogx.Int("statements", len(statements)),
		slogx.Stringer("grandTotal", result.GrandTotal),
	)
	archiveKey := u.archive(ctx, event.ID, sales, result.PerLine)

	u.publisher.Publish(ctx, notifier.TypeEventStatusChanged, EventStatusChanged{
		EventID:    id,
		Transition: string(entity.EventTransitionPost),
		From:       from,
		To:         to,
	})
	u.publisher.Publish(ctx, notifier.TypeEventPosted, EventPosted{
		EventID:    id,
		Invoices:   len(invoices),
		Statements: len(statements),
		GrandTotal: result.GrandTotal,
		ArchiveKey: archiveKey,
	})

	return &entity.PostedDocuments{
		Event:      *event,
		Invoices:   derefAll(invoices),
		Statements: derefAll(statements),
	}, nil
}

// archive uploads the parquet export of a posted event. Failures are logged only.
func (u *Usecase) archive(ctx context.Context, eventID string, sales []*entity.Sale, lines []settlement.LineSettlement) string {
	if u.archiver == nil {
		return ""
	}
	ctx = logger.WithContext(ctx, slogx.EventID(eventID))
	rows, err := export.NewRows(sales, lines)
	if err != nil {
		logger.ErrorContext(ctx, "failed to prepare event archive", err)
		return ""
	}
	data, err := export.EncodeParquet(rows)
	if err != nil {
		logger.ErrorContext(ctx, "failed to encode event archive", err)
		return ""
	}
	key, err := u.archiver.Archive(ctx, eventID, export.FormatParquet, data)
	if err != nil {
		logger.ErrorContext(ctx, "failed to archive posted event", err)
		return ""
	}
	logger.InfoContext(ctx, "Archived posted event", slogx.String("key", key), slogx.Int("rows", len(rows)))
	return key
}

func buildSellerInvoices(event *entity.Event, sales []*entity.Sale, lines []settlement.LineSettlement, issuedAt time.Time, newID func() string) ([]*entity.SellerInvoice, error) {
	var adder settlement.Adder
	invoices := make([]*entity.SellerInvoice, 0)
	bySeller := make(map[string]*entity.SellerInvoice)
	for i, sale := range sales {
		invoice, ok := bySeller[sale.SellerID]
		if !ok {
			invoice = &entity.SellerInvoice{
				ID:        newID(),
				EventID:   event.ID,
				EventName: event.Name,
				SellerID:  sale.SellerID,
				Status:    entity.InvoiceStatusPending,
				IssuedAt:  issuedAt,
			}
			bySeller[sale.SellerID] = invoice
			invoices = append(invoices, invoice)
		}
		line := lines[i]
		if sale.IsSold() {
			invoice.LotsSold++
		}
		adder.Add(&invoice.SalePrice, line.Price)
		adder.Add(&invoice.Commission, line.Commission)
		adder.Add(&invoice.SalesTax, line.Tax)
		adder.Add(&invoice.TotalDue, line.Payout)
		if err := adder.Err(); err != nil {
			return nil, errors.Wrapf(err, "seller %s invoice", sale.SellerID)
		}
	}
	return invoices, nil
}

func buildBuyerStatements(event *entity.Event, sales []*entity.Sale, lines []settlement.LineSettlement, issuedAt time.Time, newID func() string) ([]*entity.BuyerStatement, error) {
	var adder settlement.Adder
	statements := make([]*entity.BuyerStatement, 0)
	byBidder := make(map[string]*entity.BuyerStatement)
	for i, sale := range sales {
		statement, ok := byBidder[sale.BidderNumber]
		if !ok {
			statement = &entity.BuyerStatement{
				ID:           newID(),
				EventID:      event.ID,
				EventName:    event.Name,
				BidderNumber: sale.BidderNumber,
				Status:       entity.StatementStatusUnpaid,
				IssuedAt:     issuedAt,
			}
			byBidder[sale.BidderNumber] = statement
			statements = append(statements, statement)
		}
		if statement.BuyerID == "" {
			statement.BuyerID = sale.BuyerID
		}
		if statement.BuyerName == "" {
			statement.BuyerName = sale.BuyerName
		}
		line := lines[i]
		statement.Lots++
		adder.Add(&statement.Price, line.Price)
		adder.Add(&statement.Premium, line.BuyerPremium)
		adder.Add(&statement.Tax, line.Tax)
		adder.Add(&statement.Total, line.Total)
		if err := adder.Err(); err != nil {
			return nil, errors.Wrapf(err, "bidder %s statement", sale.BidderNumber)
		}
	}
	return statements, nil
}

func postedDocuments(ctx context.Context, dg datagateway.InvoiceDataGateway, event *entity.Event) (*entity.PostedDocuments, error) {
	invoices, err := dg.ListSellerInvoices(ctx, datagateway.InvoiceFilter{EventID: event.ID})
	if err != nil {
		return nil, errors.Wrap(err, "error during ListSellerInvoices")
	}
	statements, err := dg.ListBuyerStatements(ctx, datagateway.StatementFilter{EventID: event.ID})
	if err != nil {
		return nil, errors.Wrap(err, "error during ListBuyerStatements")
	}
	return &entity.PostedDocuments{
		Event:      *event,
		Invoices:   derefAll(invoices),
		Statements: derefAll(statements),
	}, nil
}

// GetPostedDocuments returns the invoices and statements issued for an event.
func (u *Usecase) GetPostedDocuments(ctx context.Context, eventID string) (*entity.PostedDocuments, error) {
	event, err := u.auctionDg.GetEvent(ctx, eventID)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetEvent")
	}
	return postedDocuments(ctx, u.auctionDg, event)
}

func (u *Usecase) MarkInvoicePaid(ctx context.Context, id string) (*entity.SellerInvoice, error) {
	invoice, err := u.auctionDg.GetSellerInvoice(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetSellerInvoice")
	}
	if invoice.Status == entity.InvoiceStatusPaid {
		return invoice, nil
	}
	paidAt := u.timestamp()
	if err := u.auctionDg.UpdateInvoiceStatus(ctx, id, entity.InvoiceStatusPaid, &paidAt); err != nil {
		return nil, errors.Wrap(err, "error during UpdateInvoiceStatus")
	}
	invoice.Status = entity.InvoiceStatusPaid
	invoice.PaidAt = &paidAt
	return invoice, nil
}

func (u *Usecase) MarkStatementPaid(ctx context.Context, id string) (*entity.BuyerStatement, error) {
	statement, err := u.auctionDg.GetBuyerStatement(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetBuyerStatement")
	}
	if statement.Status == entity.StatementStatusPaid {
		return statement, nil
	}
	paidAt := u.timestamp()
	if err := u.auctionDg.UpdateStatementStatus(ctx, id, entity.StatementStatusPaid, &paidAt); err != nil {
		return nil, errors.Wrap(err, "error during UpdateStatementStatus")
	}
	statement.Status = entity.StatementStatusPaid
	statement.PaidAt = &paidAt
	return statement, nil
}

func (u *Usecase) ListSellerInvoices(ctx context.Context, sellerID string) ([]*entity.SellerInvoice, error) {
	if _, err := u.auctionDg.GetParticipant(ctx, sellerID); err != nil {
		return nil, errors.Wrap(err, "error during GetParticipant")
	}
	invoices, err := u.auctionDg.ListSellerInvoices(ctx, datagateway.InvoiceFilter{SellerID: sellerID})
	if err != nil {
		return nil, errors.Wrap(err, "error during ListSellerInvoices")
	}
	return invoices, nil
}

func (u *Usecase) ListBuyerStatements(ctx context.Context, buyerID string) ([]*entity.BuyerStatement, error) {
	if _, err := u.auctionDg.GetParticipant(ctx, buyerID); err != nil {
		return nil, errors.Wrap(err, "error during GetParticipant")
	}
	statements, err := u.auctionDg.ListBuyerStatements(ctx, datagateway.StatementFilter{BuyerID: buyerID})
	if err != nil {
		return nil, errors.Wrap(err, "error during ListBuyerStatements")
	}
	return statements, nil
}

// GetBuyerPurchases returns every lot bought by the participant, settled under the rates of its event.
func (u *Usecase) GetBuyerPurchases(ctx context.Context, participantID string) ([]entity.Purchase, error) {
	if _, err := u.auctionDg.GetParticipant(ctx, participantID); err != nil {
		return nil, errors.Wrap(err, "error during GetParticipant")
	}
	sales, err := u.auctionDg.ListSalesByBuyer(ctx, participantID)
	if err != nil {
		return nil, errors.Wrap(err, "error during ListSalesByBuyer")
	}

	events := make(map[string]*entity.Event)
	purchases := make([]entity.Purchase, 0, len(sales))
	for _, sale := range sales {
		event, ok := events[sale.EventID]
		if !ok {
			event, err = u.auctionDg.GetEvent(ctx, sale.EventID)
			if err != nil {
				return nil, errors.Wrap(err, "error during GetEvent")
			}
			events[sale.EventID] = event
		}
		settled, err := settlement.Settle(sale.Price, event.Rates, u.policy)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to settle sale %s", sale.ID)
		}
		purchases = append(purchases, entity.Purchase{
			EventID:      event.ID,
			EventName:    event.Name,
			EventDate:    event.StartDate,
			SaleID:       sale.ID,
			LotNumber:    sale.LotNumber,
			Title:        sale.Title,
			Price:        settled.Price,
			BuyerPremium: settled.BuyerPremium,
			Tax:          settled.Tax,
			Total:        settled.Total,
		})
	}
	u.metrics.settlementsComputedAdd(len(purchases))
	slices.SortStableFunc(purchases, func(a, b entity.Purchase) int {
		if c := b.EventDate.Compare(a.EventDate); c != 0 {
			return c
		}
		return entity.CompareLotNumbers(a.LotNumber, b.LotNumber)
	})
	return purchases, nil
}

func derefAll[T any](items []*T) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		result = append(result, *item)
	}
	return result
}
