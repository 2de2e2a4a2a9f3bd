package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common/errs"
	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
	"github.com/gaze-network/auction-network/modules/auction/notifier"
	"github.com/gaze-network/auction-network/modules/auction/settlement"
)

type SaleParams struct {
	LotNumber    string
	BidderNumber string
	BuyerName    string
	SellerID     string
	Title        string
	Category     string
	ImageURL     string
	Price        settlement.Money
}

func (u *Usecase) GetSales(ctx context.Context, eventID string) ([]*entity.Sale, error) {
	if _, err := u.auctionDg.GetEvent(ctx, eventID); err != nil {
		return nil, errors.Wrap(err, "error during GetEvent")
	}
	sales, err := u.auctionDg.GetSales(ctx, eventID)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetSales")
	}
	return sales, nil
}

// AddSale records a sold lot. The buyer is resolved from the bidder number when it is an
// enrolled paddle of the event.
func (u *Usecase) AddSale(ctx context.Context, eventID string, params SaleParams) (*entity.Sale, error) {
	sale := entity.Sale{
		ID:           u.newID(),
		EventID:      eventID,
		LotNumber:    params.LotNumber,
		BidderNumber: params.BidderNumber,
		BuyerName:    params.BuyerName,
		SellerID:     params.SellerID,
		Title:        params.Title,
		Category:     params.Category,
		ImageURL:     params.ImageURL,
		Price:        params.Price,
		CreatedAt:    u.timestamp(),
	}
	if err := sale.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	tx, err := u.auctionDg.BeginAuctionTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	event, err := tx.GetEvent(ctx, eventID)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetEvent")
	}
	if !event.AcceptsSales() {
		return nil, errors.Wrapf(errs.InvalidState, "cannot add sales to an event in status %s", event.Status)
	}
	seller, err := tx.GetParticipant(ctx, sale.SellerID)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return nil, errors.Wrapf(errs.InvalidArgument, "seller %s does not exist", sale.SellerID)
		}
		return nil, errors.Wrap(err, "error during GetParticipant")
	}
	if !seller.Role.Sells() {
		return nil, errors.Wrapf(errs.InvalidArgument, "participant %s is a %s, not a seller", seller.ID, seller.Role)
	}

	// only an approved enrollment binds the paddle to a buyer; any other bidder is a walk-in
	enrollment, err := tx.GetEnrollmentByPaddle(ctx, eventID, sale.BidderNumber)
	switch {
	case err == nil && enrollment.Status == entity.EnrollmentStatusApproved:
		sale.BuyerID = enrollment.ParticipantID
		if sale.BuyerName == "" {
			buyer, err := tx.GetParticipant(ctx, enrollment.ParticipantID)
			if err != nil {
				return nil, errors.Wrap(err, "error during GetParticipant")
			}
			sale.BuyerName = buyer.Name
		}
	case err != nil && !errors.Is(err, errs.NotFound):
		return nil, errors.Wrap(err, "error during GetEnrollmentByPaddle")
	}

	if err := tx.AddSale(ctx, &sale); err != nil {
		return nil, errors.Wrap(err, "error during AddSale")
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to commit transaction")
	}

	u.metrics.saleRecorded()
	u.publisher.Publish(ctx, notifier.TypeSaleAdded, sale)
	return &sale, nil
}

func (u *Usecase) DeleteSale(ctx context.Context, eventID, saleID string) error {
	tx, err := u.auctionDg.BeginAuctionTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	event, err := tx.GetEvent(ctx, eventID)
	if err != nil {
		return errors.Wrap(err, "error during GetEvent")
	}
	if !event.AcceptsSales() {
		return errors.Wrapf(errs.InvalidState, "cannot delete sales of an event in status %s", event.Status)
	}
	sale, err := tx.GetSale(ctx, saleID)
	if err != nil {
		return errors.Wrap(err, "error during GetSale")
	}
	if sale.EventID != eventID {
		return errors.Wrapf(errs.NotFound, "sale %s in event %s", saleID, eventID)
	}
	if sale.IsInvoiced() {
		return errors.Wrapf(errs.InvalidState, "lot %s is already invoiced", sale.LotNumber)
	}
	if err := tx.DeleteSale(ctx, saleID); err != nil {
		return errors.Wrap(err, "error during DeleteSale")
	}
	if err := tx.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	u.publisher.Publish(ctx, notifier.TypeSaleDeleted, sale)
	return nil
}

// SettleSale returns the settlement of a single sale under the event rates.
func (u *Usecase) SettleSale(ctx context.Context, eventID, saleID string) (*settlement.LineSettlement, error) {
	event, err := u.auctionDg.GetEvent(ctx, eventID)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetEvent")
	}
	sale, err := u.auctionDg.GetSale(ctx, saleID)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetSale")
	}
	if sale.EventID != eventID {
		return nil, errors.Wrapf(errs.NotFound, "sale %s in event %s", saleID, eventID)
	}
	settled, err := settlement.Settle(sale.Price, event.Rates, u.policy)
	if err != nil {
		return nil, errors.Wrap(err, "failed to settle sale")
	}
	u.metrics.settlementsComputedAdd(1)
	return &settlement.LineSettlement{ID: sale.ID, SettledLineItem: settled}, nil
}

// GetEventSettlement aggregates the settlement of every sale of the event.
func (u *Usecase) GetEventSettlement(ctx context.Context, eventID string) (*settlement.EventSettlement, error) {
	event, err := u.auctionDg.GetEvent(ctx, eventID)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetEvent")
	}
	sales, err := u.auctionDg.GetSales(ctx, eventID)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetSales")
	}
	result, err := u.aggregate(event, sales)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &result, nil
}

func (u *Usecase) aggregate(event *entity.Event, sales []*entity.Sale) (settlement.EventSettlement, error) {
	result, err := settlement.Aggregate(entity.SaleLineItems(sales), event.Rates, u.policy)
	if err != nil {
		return settlement.EventSettlement{}, errors.Wrapf(err, "failed to settle event %s", event.ID)
	}
	u.metrics.settlementsComputedAdd(result.ItemCount)
	return result, nil
}
