package memory

import (
	"context"
	"slices"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common/errs"
	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
)

func (r *Repository) GetEvent(ctx context.Context, id string) (*entity.Event, error) {
	var (
		event entity.Event
		ok    bool
	)
	r.read(func(s *store) { event, ok = s.events[id] })
	if !ok {
		return nil, errors.Wrapf(errs.NotFound, "event %s", id)
	}
	return &event, nil
}

func (r *Repository) ListEvents(ctx context.Context, status entity.EventStatus) ([]*entity.Event, error) {
	events := make([]*entity.Event, 0)
	r.read(func(s *store) {
		for _, event := range s.events {
			if status != "" && event.Status != status {
				continue
			}
			event := event
			events = append(events, &event)
		}
	})
	slices.SortFunc(events, func(a, b *entity.Event) int {
		if c := b.StartDate.Compare(a.StartDate); c != 0 {
			return c
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return events, nil
}

func (r *Repository) CreateEvent(ctx context.Context, event *entity.Event) error {
	created := *event
	return r.write(func(s *store) error {
		if _, ok := s.events[created.ID]; ok {
			return errors.Wrapf(errs.Conflict, "event %s already exists", created.ID)
		}
		s.events[created.ID] = created
		return nil
	})
}

func (r *Repository) UpdateEvent(ctx context.Context, event *entity.Event) error {
	updated := *event
	return r.write(func(s *store) error {
		current, ok := s.events[updated.ID]
		if !ok {
			return errors.Wrapf(errs.NotFound, "event %s", updated.ID)
		}
		updated.Status = current.Status
		updated.CreatedAt = current.CreatedAt
		s.events[updated.ID] = updated
		return nil
	})
}

func (r *Repository) UpdateEventStatus(ctx context.Context, id string, status entity.EventStatus, updatedAt time.Time) error {
	return r.write(func(s *store) error {
		event, ok := s.events[id]
		if !ok {
			return errors.Wrapf(errs.NotFound, "event %s", id)
		}
		event.Status = status
		event.UpdatedAt = updatedAt
		s.events[id] = event
		return nil
	})
}

func (r *Repository) DeleteEvent(ctx context.Context, id string) error {
	return r.write(func(s *store) error {
		if _, ok := s.events[id]; !ok {
			return errors.Wrapf(errs.NotFound, "event %s", id)
		}
		delete(s.events, id)
		for key := range s.enrollments {
			if key.eventID == id {
				delete(s.enrollments, key)
			}
		}
		return nil
	})
}
