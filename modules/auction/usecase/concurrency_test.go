package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common/errs"
	"github.com/gaze-network/auction-network/modules/auction/datagateway"
	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
	"github.com/gaze-network/auction-network/modules/auction/settlement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pausingGateway holds the first transaction that reads an event, once armed, until release is closed.
type pausingGateway struct {
	datagateway.AuctionDataGateway
	armed   atomic.Bool
	paused  chan struct{}
	release chan struct{}
}

func (g *pausingGateway) arm() {
	g.armed.Store(true)
}

func (g *pausingGateway) BeginAuctionTx(ctx context.Context) (datagateway.AuctionDataGatewayWithTx, error) {
	tx, err := g.AuctionDataGateway.BeginAuctionTx(ctx)
	if err != nil {
		return nil, err
	}
	return &pausingTx{AuctionDataGatewayWithTx: tx, gateway: g}, nil
}

type pausingTx struct {
	datagateway.AuctionDataGatewayWithTx
	gateway *pausingGateway
}

func (tx *pausingTx) GetEvent(ctx context.Context, id string) (*entity.Event, error) {
	event, err := tx.AuctionDataGatewayWithTx.GetEvent(ctx, id)
	if tx.gateway.armed.CompareAndSwap(true, false) {
		close(tx.gateway.paused)
		<-tx.gateway.release
	}
	return event, err
}

func newPausingEnv(t *testing.T) (*testEnv, *pausingGateway) {
	t.Helper()
	env := newTestEnv(t)
	gateway := &pausingGateway{
		AuctionDataGateway: env.repo,
		paused:             make(chan struct{}),
		release:            make(chan struct{}),
	}
	env.uc.auctionDg = gateway
	return env, gateway
}

// race runs first until it has read its event, then starts second and checks that second
// cannot finish while first is still in flight. It returns both results once first is released.
func race(t *testing.T, gateway *pausingGateway, first, second func() error) (firstErr, secondErr error) {
	t.Helper()
	gateway.arm()
	firstDone := make(chan error, 1)
	go func() { firstDone <- first() }()
	select {
	case <-gateway.paused:
	case err := <-firstDone:
		t.Fatalf("first call finished without reading an event in a transaction: %v", err)
	}

	secondDone := make(chan error, 1)
	go func() { secondDone <- second() }()
	select {
	case err := <-secondDone:
		close(gateway.release)
		t.Fatalf("second call finished while the first transaction was open: %v", err)
	case <-time.After(50 * time.Millisecond):
	}

	close(gateway.release)
	return <-firstDone, <-secondDone
}

func TestConcurrentTransactions(t *testing.T) {
	ctx := context.Background()

	t.Run("sale added while posting", func(t *testing.T) {
		env, gateway := newPausingEnv(t)
		event := env.createEvent(t, "Spring Estate Sale")
		seller := env.createParticipant(t, "sam", entity.ParticipantRoleSeller)
		env.transition(t, event.ID, entity.EventTransitionStart)
		env.addSale(t, event.ID, "1", "101", seller.ID, "500")
		env.transition(t, event.ID, entity.EventTransitionEnd)

		postErr, addErr := race(t, gateway,
			func() error {
				_, err := env.uc.PostEvent(ctx, event.ID)
				return err
			},
			func() error {
				_, err := env.uc.AddSale(ctx, event.ID, SaleParams{
					LotNumber:    "2",
					BidderNumber: "102",
					SellerID:     seller.ID,
					Title:        "Late lot",
					Price:        settlement.MustParseMoney("100"),
				})
				return err
			},
		)
		require.NoError(t, postErr)
		assert.ErrorIs(t, addErr, errs.InvalidState)

		sales, err := env.uc.GetSales(ctx, event.ID)
		require.NoError(t, err)
		require.Len(t, sales, 1)
		assert.True(t, sales[0].IsInvoiced())

		docs, err := env.uc.GetPostedDocuments(ctx, event.ID)
		require.NoError(t, err)
		require.Len(t, docs.Invoices, 1)
		assert.Equal(t, "500.00", docs.Invoices[0].SalePrice.String())
	})

	t.Run("post submitted twice", func(t *testing.T) {
		env, gateway := newPausingEnv(t)
		event := env.createEvent(t, "Spring Estate Sale")
		seller := env.createParticipant(t, "sam", entity.ParticipantRoleSeller)
		env.transition(t, event.ID, entity.EventTransitionStart)
		env.addSale(t, event.ID, "1", "101", seller.ID, "500")
		env.addSale(t, event.ID, "2", "102", seller.ID, "250")
		env.transition(t, event.ID, entity.EventTransitionEnd)

		var first, second *entity.PostedDocuments
		firstErr, secondErr := race(t, gateway,
			func() (err error) {
				first, err = env.uc.PostEvent(ctx, event.ID)
				return err
			},
			func() (err error) {
				second, err = env.uc.PostEvent(ctx, event.ID)
				return err
			},
		)
		require.NoError(t, firstErr)
		require.NoError(t, secondErr)
		require.Len(t, first.Invoices, 1)
		require.Len(t, second.Invoices, 1)
		assert.Equal(t, first.Invoices[0].ID, second.Invoices[0].ID)

		docs, err := env.uc.GetPostedDocuments(ctx, event.ID)
		require.NoError(t, err)
		assert.Len(t, docs.Invoices, 1)
		assert.Len(t, docs.Statements, 2)
	})

	t.Run("approve racing reject", func(t *testing.T) {
		env, gateway := newPausingEnv(t)
		event := env.createEvent(t, "Spring Estate Sale")
		bidder := env.createParticipant(t, "bea", entity.ParticipantRoleBidder)
		_, err := env.uc.RequestEnrollment(ctx, event.ID, bidder.ID)
		require.NoError(t, err)

		approveErr, rejectErr := race(t, gateway,
			func() error {
				_, err := env.uc.Approve(ctx, event.ID, bidder.ID, "101")
				return err
			},
			func() error {
				_, err := env.uc.Reject(ctx, event.ID, bidder.ID)
				return err
			},
		)
		require.NoError(t, approveErr)
		assert.ErrorIs(t, rejectErr, errs.InvalidState)

		enrollment, err := env.repo.GetEnrollment(ctx, event.ID, bidder.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.EnrollmentStatusApproved, enrollment.Status)
		assert.Equal(t, "101", enrollment.PaddleNumber)
	})

	t.Run("many concurrent decisions", func(t *testing.T) {
		env := newTestEnv(t)
		event := env.createEvent(t, "Spring Estate Sale")
		bidder := env.createParticipant(t, "bea", entity.ParticipantRoleBidder)
		_, err := env.uc.RequestEnrollment(ctx, event.ID, bidder.ID)
		require.NoError(t, err)

		var (
			wg        sync.WaitGroup
			succeeded atomic.Int32
			rejected  atomic.Int32
		)
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func(approve bool) {
				defer wg.Done()
				var err error
				if approve {
					_, err = env.uc.Approve(ctx, event.ID, bidder.ID, "")
				} else {
					_, err = env.uc.Reject(ctx, event.ID, bidder.ID)
				}
				switch {
				case err == nil:
					succeeded.Add(1)
				case errors.Is(err, errs.InvalidState):
					rejected.Add(1)
				}
			}(i%2 == 0)
		}
		wg.Wait()
		assert.EqualValues(t, 1, succeeded.Load())
		assert.EqualValues(t, 15, rejected.Load())
	})
}
