package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common/errs"
	"github.com/gaze-network/auction-network/modules/auction/datagateway/mocks"
	"github.com/gaze-network/auction-network/modules/auction/export"
	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
	"github.com/gaze-network/auction-network/modules/auction/notifier"
	"github.com/gaze-network/auction-network/modules/auction/settlement"
	"github.com/gaze-network/auction-network/pkg/parquetutils"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type postFixture struct {
	env      *testEnv
	event    *entity.Event
	sellerA  *entity.Participant
	sellerB  *entity.Participant
	buyer    *entity.Participant
	archiver *fakeArchiver
}

// newPostFixture records three lots: two bought by the enrolled paddle 101 and one by a walk-in.
func newPostFixture(t *testing.T) *postFixture {
	t.Helper()
	ctx := context.Background()
	archiver := &fakeArchiver{}
	env := newTestEnv(t, WithArchiver(archiver))
	f := &postFixture{
		env:      env,
		event:    env.createEvent(t, "Spring Estate Sale"),
		sellerA:  env.createParticipant(t, "sam", entity.ParticipantRoleSeller),
		sellerB:  env.createParticipant(t, "cora", entity.ParticipantRoleCosigner),
		buyer:    env.createParticipant(t, "bea", entity.ParticipantRoleBuyer),
		archiver: archiver,
	}
	_, err := env.uc.RequestEnrollment(ctx, f.event.ID, f.buyer.ID)
	require.NoError(t, err)
	_, err = env.uc.Approve(ctx, f.event.ID, f.buyer.ID, "101")
	require.NoError(t, err)

	env.transition(t, f.event.ID, entity.EventTransitionStart)
	env.addSale(t, f.event.ID, "10", "101", f.sellerB.ID, "200")
	env.addSale(t, f.event.ID, "1", "101", f.sellerA.ID, "500")
	env.addSale(t, f.event.ID, "2", "205", f.sellerA.ID, "100")
	return f
}

func TestPostEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("requires ended", func(t *testing.T) {
		f := newPostFixture(t)
		_, err := f.env.uc.PostEvent(ctx, f.event.ID)
		assert.ErrorIs(t, err, errs.InvalidState)
	})

	t.Run("issues documents", func(t *testing.T) {
		f := newPostFixture(t)
		f.env.transition(t, f.event.ID, entity.EventTransitionEnd)

		posted, err := f.env.uc.PostEvent(ctx, f.event.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.EventStatusClosed, posted.Event.Status)

		require.Len(t, posted.Invoices, 2)
		first, second := posted.Invoices[0], posted.Invoices[1]
		assert.Equal(t, f.sellerA.ID, first.SellerID)
		assert.Equal(t, 2, first.LotsSold)
		assert.Equal(t, "600.00", first.SalePrice.String())
		assert.Equal(t, "60.00", first.Commission.String())
		assert.Equal(t, "48.00", first.SalesTax.String())
		assert.Equal(t, "540.00", first.TotalDue.String())
		assert.Equal(t, entity.InvoiceStatusPending, first.Status)
		assert.Equal(t, f.sellerB.ID, second.SellerID)
		assert.Equal(t, "180.00", second.TotalDue.String())

		require.Len(t, posted.Statements, 2)
		enrolled, walkIn := posted.Statements[0], posted.Statements[1]
		assert.Equal(t, "101", enrolled.BidderNumber)
		assert.Equal(t, f.buyer.ID, enrolled.BuyerID)
		assert.Equal(t, "bea", enrolled.BuyerName)
		assert.Equal(t, 2, enrolled.Lots)
		assert.Equal(t, "700.00", enrolled.Price.String())
		assert.Equal(t, "105.00", enrolled.Premium.String())
		assert.Equal(t, "56.00", enrolled.Tax.String())
		assert.Equal(t, "861.00", enrolled.Total.String())
		assert.Equal(t, entity.StatementStatusUnpaid, enrolled.Status)
		assert.Equal(t, "205", walkIn.BidderNumber)
		assert.Empty(t, walkIn.BuyerID)
		assert.Equal(t, "123.00", walkIn.Total.String())

		result, err := f.env.uc.GetEventSettlement(ctx, f.event.ID)
		require.NoError(t, err)
		statementTotal, err := settlement.Sum(lo.Map(posted.Statements, func(s entity.BuyerStatement, _ int) settlement.Money { return s.Total })...)
		require.NoError(t, err)
		assert.Equal(t, result.GrandTotal, statementTotal)
		invoiceTotal, err := settlement.Sum(lo.Map(posted.Invoices, func(i entity.SellerInvoice, _ int) settlement.Money { return i.TotalDue })...)
		require.NoError(t, err)
		assert.Equal(t, result.TotalPayout, invoiceTotal)

		sales, err := f.env.uc.GetSales(ctx, f.event.ID)
		require.NoError(t, err)
		for _, sale := range sales {
			require.NotNil(t, sale.InvoicedAt, sale.LotNumber)
			assert.Equal(t, testNow, *sale.InvoicedAt)
		}

		assert.Equal(t, f.event.ID, f.archiver.eventID)
		assert.Equal(t, export.FormatParquet, f.archiver.format)
		rows, err := parquetutils.ReadBytes[export.Row](f.archiver.data)
		require.NoError(t, err)
		assert.Len(t, rows, 3)

		kinds := f.env.publisher.kinds()
		assert.Equal(t, notifier.TypeEventPosted, kinds[len(kinds)-1])
		last := f.env.publisher.events[len(kinds)-1].data.(EventPosted)
		assert.Equal(t, "auction/"+f.event.ID+"/sales.parquet", last.ArchiveKey)
		assert.Equal(t, result.GrandTotal, last.GrandTotal)
	})

	t.Run("posting twice returns the same documents", func(t *testing.T) {
		f := newPostFixture(t)
		f.env.transition(t, f.event.ID, entity.EventTransitionEnd)

		first, err := f.env.uc.PostEvent(ctx, f.event.ID)
		require.NoError(t, err)
		published := len(f.env.publisher.kinds())

		second, err := f.env.uc.PostEvent(ctx, f.event.ID)
		require.NoError(t, err)
		assert.ElementsMatch(t, first.Invoices, second.Invoices)
		assert.ElementsMatch(t, first.Statements, second.Statements)
		assert.Len(t, f.env.publisher.kinds(), published)

		stored, err := f.env.uc.GetPostedDocuments(ctx, f.event.ID)
		require.NoError(t, err)
		assert.Len(t, stored.Invoices, 2)
	})

	t.Run("archive failure does not fail the post", func(t *testing.T) {
		f := newPostFixture(t)
		f.archiver.err = errors.New("bucket unavailable")
		f.env.transition(t, f.event.ID, entity.EventTransitionEnd)

		posted, err := f.env.uc.PostEvent(ctx, f.event.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.EventStatusClosed, posted.Event.Status)
	})
}

func TestPostEventAmountOutOfRange(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	event := env.createEvent(t, "Spring Estate Sale")
	seller := env.createParticipant(t, "sam", entity.ParticipantRoleSeller)
	env.transition(t, event.ID, entity.EventTransitionStart)
	env.addSale(t, event.ID, "1", "101", seller.ID, "50000000000000000.00")
	env.addSale(t, event.ID, "2", "102", seller.ID, "50000000000000000.00")
	env.transition(t, event.ID, entity.EventTransitionEnd)

	_, err := env.uc.PostEvent(ctx, event.ID)
	assert.ErrorIs(t, err, errs.InvalidArgument)
	_, err = env.uc.GetEventSettlement(ctx, event.ID)
	assert.ErrorIs(t, err, errs.InvalidArgument)
	_, err = env.uc.GetEventDetails(ctx, event.ID)
	assert.ErrorIs(t, err, errs.InvalidArgument)

	stored, err := env.uc.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EventStatusEnded, stored.Status)
	docs, err := env.uc.GetPostedDocuments(ctx, event.ID)
	require.NoError(t, err)
	assert.Empty(t, docs.Invoices)
	assert.Empty(t, docs.Statements)
}

func TestPostEventRollback(t *testing.T) {
	ctx := context.Background()
	dg := mocks.NewAuctionDataGatewayWithTx(t)
	tx := mocks.NewAuctionDataGatewayWithTx(t)
	uc := New(dg, settlement.Policy{})

	event := &entity.Event{
		ID:     "e1",
		Name:   "Spring Estate Sale",
		Status: entity.EventStatusEnded,
		Rates:  *testRates("10", "8", "15"),
	}
	sales := []*entity.Sale{
		{ID: "s1", EventID: "e1", LotNumber: "1", BidderNumber: "101", SellerID: "p1", Price: settlement.MustParseMoney("500")},
	}

	dg.EXPECT().BeginAuctionTx(mock.Anything).Return(tx, nil)
	tx.EXPECT().GetEvent(mock.Anything, "e1").Return(event, nil)
	tx.EXPECT().GetSales(mock.Anything, "e1").Return(sales, nil)
	tx.EXPECT().CreateSellerInvoices(mock.Anything, mock.Anything).Return(nil)
	tx.EXPECT().CreateBuyerStatements(mock.Anything, mock.Anything).Return(errors.New("disk full"))
	tx.EXPECT().Rollback(mock.Anything).Return(nil)

	_, err := uc.PostEvent(ctx, "e1")
	require.Error(t, err)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
	tx.AssertNotCalled(t, "UpdateEventStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoicePayments(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(t)
	f.env.transition(t, f.event.ID, entity.EventTransitionEnd)
	posted, err := f.env.uc.PostEvent(ctx, f.event.ID)
	require.NoError(t, err)

	paidAt := testNow.Add(time.Hour)
	f.env.uc.now = func() time.Time { return paidAt }

	invoice, err := f.env.uc.MarkInvoicePaid(ctx, posted.Invoices[0].ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, invoice.Status)
	require.NotNil(t, invoice.PaidAt)
	assert.Equal(t, paidAt, *invoice.PaidAt)

	f.env.uc.now = func() time.Time { return paidAt.Add(time.Hour) }
	again, err := f.env.uc.MarkInvoicePaid(ctx, posted.Invoices[0].ID)
	require.NoError(t, err)
	assert.Equal(t, paidAt, *again.PaidAt)

	statement, err := f.env.uc.MarkStatementPaid(ctx, posted.Statements[0].ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatementStatusPaid, statement.Status)

	_, err = f.env.uc.MarkInvoicePaid(ctx, "missing")
	assert.ErrorIs(t, err, errs.NotFound)

	invoices, err := f.env.uc.ListSellerInvoices(ctx, f.sellerA.ID)
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, entity.InvoiceStatusPaid, invoices[0].Status)

	statements, err := f.env.uc.ListBuyerStatements(ctx, f.buyer.ID)
	require.NoError(t, err)
	require.Len(t, statements, 1)
	assert.Equal(t, entity.StatementStatusPaid, statements[0].Status)
}

func TestGetBuyerPurchases(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture(t)

	purchases, err := f.env.uc.GetBuyerPurchases(ctx, f.buyer.ID)
	require.NoError(t, err)
	require.Len(t, purchases, 2)
	assert.Equal(t, "1", purchases[0].LotNumber)
	assert.Equal(t, "615.00", purchases[0].Total.String())
	assert.Equal(t, "10", purchases[1].LotNumber)
	assert.Equal(t, "246.00", purchases[1].Total.String())
	assert.Equal(t, "Spring Estate Sale", purchases[1].EventName)

	_, err = f.env.uc.GetBuyerPurchases(ctx, "missing")
	assert.ErrorIs(t, err, errs.NotFound)
}
