package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
	"github.com/gaze-network/auction-network/modules/auction/notifier"
	"github.com/gaze-network/auction-network/pkg/logger"
	"github.com/gaze-network/auction-network/pkg/logger/slogx"
)

type EventStatusChanged struct {
	EventID    string             `json:"eventId"`
	Transition string             `json:"transition"`
	From       entity.EventStatus `json:"from"`
	To         entity.EventStatus `json:"to"`
}

// TransitionEvent moves an event through its lifecycle. Posting goes through PostEvent
// because it also issues the invoices.
func (u *Usecase) TransitionEvent(ctx context.Context, id string, transition entity.EventTransition) (*entity.Event, error) {
	if transition == entity.EventTransitionPost {
		posted, err := u.PostEvent(ctx, id)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return &posted.Event, nil
	}

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
	to, err := from.Apply(transition)
	u.metrics.transition(MachineEvent, string(transition), err)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	event.Status = to
	event.UpdatedAt = u.timestamp()
	if err := tx.UpdateEventStatus(ctx, id, to, event.UpdatedAt); err != nil {
		return nil, errors.Wrap(err, "error during UpdateEventStatus")
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to commit transaction")
	}

	logger.InfoContext(ctx, "Event status changed", slogx.EventID(id), slogx.String("from", string(from)), slogx.String("to", string(to)))
	u.publisher.Publish(ctx, notifier.TypeEventStatusChanged, EventStatusChanged{
		EventID:    id,
		Transition: string(transition),
		From:       from,
		To:         to,
	})
	return event, nil
}
