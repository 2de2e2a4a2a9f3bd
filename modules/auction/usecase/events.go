package usecase

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common/errs"
	"github.com/gaze-network/auction-network/modules/auction/datagateway"
	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
	"github.com/gaze-network/auction-network/modules/auction/settlement"
	"github.com/samber/lo"
)

type EventParams struct {
	Name        string
	Description string
	Location    string
	StartDate   time.Time
	EndDate     time.Time
	Time        string
	// Rates are the event rates. Nil inherits the marketplace default rates on create
	// and keeps the current rates on update.
	Rates *settlement.Rates
}

func (u *Usecase) CreateEvent(ctx context.Context, params EventParams) (*entity.Event, error) {
	rates := params.Rates
	if rates == nil {
		settings, err := u.GetSettings(ctx)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		rates = &settings.DefaultRates
	}

	now := u.timestamp()
	event := entity.Event{
		ID:          u.newID(),
		Name:        params.Name,
		Description: params.Description,
		Location:    params.Location,
		StartDate:   params.StartDate,
		EndDate:     params.EndDate,
		Time:        params.Time,
		Status:      entity.EventStatusDraft,
		Rates:       *rates,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := event.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := u.auctionDg.CreateEvent(ctx, &event); err != nil {
		return nil, errors.Wrap(err, "error during CreateEvent")
	}
	return &event, nil
}

func (u *Usecase) UpdateEvent(ctx context.Context, id string, params EventParams) (*entity.Event, error) {
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

	if params.Rates != nil && !params.Rates.Equal(event.Rates) {
		frozen, err := u.ratesFrozen(ctx, tx, event)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if frozen {
			return nil, errors.Wrap(errs.InvalidState, "rates cannot change once the event is invoiced")
		}
		event.Rates = *params.Rates
	}
	event.Name = params.Name
	event.Description = params.Description
	event.Location = params.Location
	event.StartDate = params.StartDate
	event.EndDate = params.EndDate
	event.Time = params.Time
	event.UpdatedAt = u.timestamp()
	if err := event.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	if err := tx.UpdateEvent(ctx, event); err != nil {
		return nil, errors.Wrap(err, "error during UpdateEvent")
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to commit transaction")
	}
	return event, nil
}

// ratesFrozen reports whether the settlement of the event was already issued.
func (u *Usecase) ratesFrozen(ctx context.Context, dg datagateway.SaleDataGateway, event *entity.Event) (bool, error) {
	if event.Status == entity.EventStatusClosed {
		return true, nil
	}
	sales, err := dg.GetSales(ctx, event.ID)
	if err != nil {
		return false, errors.Wrap(err, "error during GetSales")
	}
	return lo.SomeBy(sales, func(sale *entity.Sale) bool { return sale.IsInvoiced() }), nil
}

func (u *Usecase) DeleteEvent(ctx context.Context, id string) error {
	tx, err := u.auctionDg.BeginAuctionTx(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	event, err := tx.GetEvent(ctx, id)
	if err != nil {
		return errors.Wrap(err, "error during GetEvent")
	}
	if !event.IsDeletable() {
		return errors.Wrapf(errs.InvalidState, "cannot delete an event in status %s", event.Status)
	}
	sales, err := tx.GetSales(ctx, id)
	if err != nil {
		return errors.Wrap(err, "error during GetSales")
	}
	if len(sales) > 0 {
		return errors.Wrapf(errs.InvalidState, "cannot delete an event with %d recorded sales", len(sales))
	}
	if err := tx.DeleteEvent(ctx, id); err != nil {
		return errors.Wrap(err, "error during DeleteEvent")
	}
	return errors.Wrap(tx.Commit(ctx), "failed to commit transaction")
}

func (u *Usecase) GetEvent(ctx context.Context, id string) (*entity.Event, error) {
	event, err := u.auctionDg.GetEvent(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetEvent")
	}
	return event, nil
}

func (u *Usecase) ListEvents(ctx context.Context, status entity.EventStatus) ([]*entity.Event, error) {
	if status != "" && !status.IsValid() {
		return nil, errors.Wrapf(errs.InvalidArgument, "unknown event status %q", status)
	}
	events, err := u.auctionDg.ListEvents(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "error during ListEvents")
	}
	return events, nil
}

// GetEventDetails returns the event with its sales stats.
func (u *Usecase) GetEventDetails(ctx context.Context, id string) (*entity.EventDetails, error) {
	event, err := u.GetEvent(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	sales, err := u.auctionDg.GetSales(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetSales")
	}
	total, err := totalPrice(sales)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &entity.EventDetails{
		Event: *event,
		Stats: entity.EventStats{
			ItemCount:   len(sales),
			TotalSales:  total,
			SellerCount: len(lo.UniqBy(sales, func(sale *entity.Sale) string { return sale.SellerID })),
		},
	}, nil
}
