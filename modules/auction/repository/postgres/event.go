package postgres

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
	"github.com/gaze-network/auction-network/modules/auction/repository/postgres/gen"
)

// GetEvent inside a transaction locks the event row until the transaction ends, so
// concurrent transactions on the same event run one after another.
func (r *Repository) GetEvent(ctx context.Context, id string) (*entity.Event, error) {
	get := r.queries.GetEvent
	if r.tx != nil {
		get = r.queries.LockEvent
	}
	model, err := get(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(wrapQueryError(err), "event %s", id)
	}
	event, err := mapEventModelToType(model)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &event, nil
}

func (r *Repository) ListEvents(ctx context.Context, status entity.EventStatus) ([]*entity.Event, error) {
	models, err := r.queries.ListEvents(ctx, status.String())
	if err != nil {
		return nil, wrapQueryError(err)
	}
	events := make([]*entity.Event, 0, len(models))
	for _, model := range models {
		event, err := mapEventModelToType(model)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		events = append(events, &event)
	}
	return events, nil
}

func (r *Repository) CreateEvent(ctx context.Context, event *entity.Event) error {
	if err := r.queries.CreateEvent(ctx, mapEventTypeToParams(*event)); err != nil {
		return errors.Wrapf(wrapQueryError(err), "event %s", event.ID)
	}
	return nil
}

func (r *Repository) UpdateEvent(ctx context.Context, event *entity.Event) error {
	params := mapEventTypeToParams(*event)
	rows, err := r.queries.UpdateEvent(ctx, gen.UpdateEventParams{
		ID:             params.ID,
		Name:           params.Name,
		Description:    params.Description,
		Location:       params.Location,
		StartDate:      params.StartDate,
		EndDate:        params.EndDate,
		Time:           params.Time,
		CommissionRate: params.CommissionRate,
		TaxRate:        params.TaxRate,
		BuyersPremium:  params.BuyersPremium,
		UpdatedAt:      params.UpdatedAt,
	})
	return expectAffected(rows, err, "event %s", event.ID)
}

func (r *Repository) UpdateEventStatus(ctx context.Context, id string, status entity.EventStatus, updatedAt time.Time) error {
	rows, err := r.queries.UpdateEventStatus(ctx, gen.UpdateEventStatusParams{
		ID:        id,
		Status:    status.String(),
		UpdatedAt: timestamptzFromTime(updatedAt),
	})
	return expectAffected(rows, err, "event %s", id)
}

func (r *Repository) DeleteEvent(ctx context.Context, id string) error {
	rows, err := r.queries.DeleteEvent(ctx, id)
	return expectAffected(rows, err, "event %s", id)
}
