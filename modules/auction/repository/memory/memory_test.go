package memory

import (
	"context"
	"testing"
	"time"

	"github.com/gaze-network/auction-network/common/errs"
	"github.com/gaze-network/auction-network/modules/auction/datagateway"
	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
	"github.com/gaze-network/auction-network/modules/auction/settlement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	require.NoError(t, repo.CreateEvent(ctx, &entity.Event{ID: "e1", Status: entity.EventStatusDraft}))

	t.Run("commit", func(t *testing.T) {
		tx, err := repo.BeginAuctionTx(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback(ctx) }()

		require.NoError(t, tx.UpdateEventStatus(ctx, "e1", entity.EventStatusLive, time.Now()))

		inTx, err := tx.GetEvent(ctx, "e1")
		require.NoError(t, err)
		assert.Equal(t, entity.EventStatusLive, inTx.Status)

		outside, err := repo.GetEvent(ctx, "e1")
		require.NoError(t, err)
		assert.Equal(t, entity.EventStatusDraft, outside.Status, "uncommitted writes must not leak")

		require.NoError(t, tx.Commit(ctx))
		committed, err := repo.GetEvent(ctx, "e1")
		require.NoError(t, err)
		assert.Equal(t, entity.EventStatusLive, committed.Status)
	})

	t.Run("rollback", func(t *testing.T) {
		tx, err := repo.BeginAuctionTx(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.DeleteEvent(ctx, "e1"))
		require.NoError(t, tx.Rollback(ctx))

		_, err = repo.GetEvent(ctx, "e1")
		assert.NoError(t, err)
	})

	t.Run("nested", func(t *testing.T) {
		tx, err := repo.BeginAuctionTx(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback(ctx) }()
		_, err = tx.BeginAuctionTx(ctx)
		assert.ErrorIs(t, err, ErrTxAlreadyExists)
	})

	t.Run("closed", func(t *testing.T) {
		tx, err := repo.BeginAuctionTx(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.Commit(ctx))
		assert.NoError(t, tx.Rollback(ctx))
		assert.NoError(t, tx.Commit(ctx))
		assert.ErrorIs(t, tx.UpdateEventStatus(ctx, "e1", entity.EventStatusPaused, time.Now()), ErrTxClosed)
	})

	t.Run("commit_conflict_keeps_state", func(t *testing.T) {
		tx, err := repo.BeginAuctionTx(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.AddSale(ctx, &entity.Sale{ID: "s1", EventID: "e1", LotNumber: "1"}))

		require.NoError(t, repo.AddSale(ctx, &entity.Sale{ID: "s2", EventID: "e1", LotNumber: "1"}))

		err = tx.Commit(ctx)
		assert.ErrorIs(t, err, errs.Conflict)
		_, err = repo.GetSale(ctx, "s1")
		assert.ErrorIs(t, err, errs.NotFound)

		// a failed commit still lets the next transaction in
		next, err := repo.BeginAuctionTx(ctx)
		require.NoError(t, err)
		require.NoError(t, next.Rollback(ctx))
	})
}

func TestTransactionSerialized(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	require.NoError(t, repo.CreateEvent(ctx, &entity.Event{ID: "e1", Status: entity.EventStatusLive}))

	t.Run("second transaction sees first commit", func(t *testing.T) {
		first, err := repo.BeginAuctionTx(ctx)
		require.NoError(t, err)
		defer func() { _ = first.Rollback(ctx) }()

		started := make(chan datagateway.AuctionDataGatewayWithTx, 1)
		go func() {
			second, err := repo.BeginAuctionTx(ctx)
			if err != nil {
				close(started)
				return
			}
			started <- second
		}()

		select {
		case <-started:
			t.Fatal("second transaction began while the first was open")
		case <-time.After(50 * time.Millisecond):
		}

		require.NoError(t, first.UpdateEventStatus(ctx, "e1", entity.EventStatusClosed, time.Now()))
		require.NoError(t, first.Commit(ctx))

		var second datagateway.AuctionDataGatewayWithTx
		select {
		case second = <-started:
		case <-time.After(time.Second):
			t.Fatal("second transaction did not begin after commit")
		}
		require.NotNil(t, second)
		defer func() { _ = second.Rollback(ctx) }()

		event, err := second.GetEvent(ctx, "e1")
		require.NoError(t, err)
		assert.Equal(t, entity.EventStatusClosed, event.Status)
	})

	t.Run("begin honors context", func(t *testing.T) {
		tx, err := repo.BeginAuctionTx(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback(ctx) }()

		cctx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()
		_, err = repo.BeginAuctionTx(cctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("reads outside transactions do not wait", func(t *testing.T) {
		tx, err := repo.BeginAuctionTx(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback(ctx) }()

		_, err = repo.GetEvent(ctx, "e1")
		assert.NoError(t, err)
	})
}

func TestSales(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	for _, sale := range []*entity.Sale{
		{ID: "a", EventID: "e1", LotNumber: "10", Price: settlement.MustParseMoney("100")},
		{ID: "b", EventID: "e1", LotNumber: "2", Price: settlement.MustParseMoney("50")},
		{ID: "c", EventID: "e2", LotNumber: "1"},
	} {
		require.NoError(t, repo.AddSale(ctx, sale))
	}

	err := repo.AddSale(ctx, &entity.Sale{ID: "d", EventID: "e1", LotNumber: "2"})
	assert.ErrorIs(t, err, errs.Conflict)

	sales, err := repo.GetSales(ctx, "e1")
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, "2", sales[0].LotNumber)
	assert.Equal(t, "10", sales[1].LotNumber)

	invoicedAt := time.Date(2024, 4, 16, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.MarkSalesInvoiced(ctx, "e1", invoicedAt))
	sale, err := repo.GetSale(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, sale.InvoicedAt)
	assert.Equal(t, invoicedAt, *sale.InvoicedAt)

	other, err := repo.GetSale(ctx, "c")
	require.NoError(t, err)
	assert.Nil(t, other.InvoicedAt)

	assert.ErrorIs(t, repo.DeleteSale(ctx, "missing"), errs.NotFound)
}

func TestListSalesByBuyerOrder(t *testing.T) {
	ctx := context.Background()
	at := func(minute int) time.Time { return time.Date(2024, 4, 16, 12, minute, 0, 0, time.UTC) }
	saleIDs := func(sales []*entity.Sale) []string {
		ids := make([]string, 0, len(sales))
		for _, sale := range sales {
			ids = append(ids, sale.ID)
		}
		return ids
	}

	t.Run("recorded time across events", func(t *testing.T) {
		repo := NewRepository()
		// lot order within e1 disagrees with the recorded order
		for _, sale := range []*entity.Sale{
			{ID: "a", EventID: "e1", LotNumber: "1", BuyerID: "p1", CreatedAt: at(2)},
			{ID: "b", EventID: "e2", LotNumber: "5", BuyerID: "p1", CreatedAt: at(1)},
			{ID: "c", EventID: "e1", LotNumber: "2", BuyerID: "p1", CreatedAt: at(0)},
		} {
			require.NoError(t, repo.AddSale(ctx, sale))
		}
		for i := 0; i < 10; i++ {
			sales, err := repo.ListSalesByBuyer(ctx, "p1")
			require.NoError(t, err)
			assert.Equal(t, []string{"c", "b", "a"}, saleIDs(sales))
		}
	})

	t.Run("ties broken by event then lot", func(t *testing.T) {
		repo := NewRepository()
		for _, sale := range []*entity.Sale{
			{ID: "a", EventID: "e2", LotNumber: "1", BuyerID: "p1", CreatedAt: at(0)},
			{ID: "b", EventID: "e1", LotNumber: "10", BuyerID: "p1", CreatedAt: at(0)},
			{ID: "c", EventID: "e1", LotNumber: "9", BuyerID: "p1", CreatedAt: at(0)},
			{ID: "d", EventID: "e1", LotNumber: "1", BuyerID: "p2", CreatedAt: at(0)},
		} {
			require.NoError(t, repo.AddSale(ctx, sale))
		}
		sales, err := repo.ListSalesByBuyer(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, []string{"c", "b", "a"}, saleIDs(sales))
	})
}

func TestEnrollments(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	_, err := repo.GetEnrollment(ctx, "e1", "p1")
	assert.ErrorIs(t, err, errs.NotFound)

	require.NoError(t, repo.UpsertEnrollment(ctx, &entity.Enrollment{EventID: "e1", ParticipantID: "p1", Status: entity.EnrollmentStatusApproved, PaddleNumber: "101"}))
	require.NoError(t, repo.UpsertEnrollment(ctx, &entity.Enrollment{EventID: "e2", ParticipantID: "p2", Status: entity.EnrollmentStatusApproved, PaddleNumber: "101"}))

	err = repo.UpsertEnrollment(ctx, &entity.Enrollment{EventID: "e1", ParticipantID: "p2", Status: entity.EnrollmentStatusApproved, PaddleNumber: "101"})
	assert.ErrorIs(t, err, errs.Conflict)

	enrollment, err := repo.GetEnrollmentByPaddle(ctx, "e1", "101")
	require.NoError(t, err)
	assert.Equal(t, "p1", enrollment.ParticipantID)

	numbers, err := repo.ListPaddleNumbers(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, []string{"101"}, numbers)

	byParticipant, err := repo.ListEnrollmentsByParticipant(ctx, "p2")
	require.NoError(t, err)
	require.Len(t, byParticipant, 1)
	assert.Equal(t, "e2", byParticipant[0].EventID)
}

func TestInvoices(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()
	require.NoError(t, repo.CreateSellerInvoices(ctx, []*entity.SellerInvoice{
		{ID: "i1", EventID: "e1", SellerID: "s1", Status: entity.InvoiceStatusPending},
		{ID: "i2", EventID: "e1", SellerID: "s2", Status: entity.InvoiceStatusPending},
	}))

	invoices, err := repo.ListSellerInvoices(ctx, datagateway.InvoiceFilter{SellerID: "s2"})
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, "i2", invoices[0].ID)

	paidAt := time.Now()
	require.NoError(t, repo.UpdateInvoiceStatus(ctx, "i2", entity.InvoiceStatusPaid, &paidAt))
	invoice, err := repo.GetSellerInvoice(ctx, "i2")
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, invoice.Status)

	assert.ErrorIs(t, repo.UpdateStatementStatus(ctx, "missing", entity.StatementStatusPaid, nil), errs.NotFound)

	_, err = repo.GetSettings(ctx)
	assert.ErrorIs(t, err, errs.NotFound)
}
