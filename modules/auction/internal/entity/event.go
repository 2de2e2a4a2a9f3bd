package entity

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common/errs"
	"github.com/gaze-network/auction-network/modules/auction/settlement"
	"github.com/samber/lo"
)

type EventStatus string

const (
	EventStatusDraft     EventStatus = "Draft"
	EventStatusScheduled EventStatus = "Scheduled"
	EventStatusLive      EventStatus = "Live"
	EventStatusPaused    EventStatus = "Paused"
	EventStatusEnded     EventStatus = "Ended"
	EventStatusClosed    EventStatus = "Closed"
)

var EventStatuses = []EventStatus{
	EventStatusDraft,
	EventStatusScheduled,
	EventStatusLive,
	EventStatusPaused,
	EventStatusEnded,
	EventStatusClosed,
}

func (s EventStatus) IsValid() bool {
	return lo.Contains(EventStatuses, s)
}

func (s EventStatus) String() string {
	return string(s)
}

type EventTransition string

const (
	EventTransitionSchedule EventTransition = "schedule"
	EventTransitionStart    EventTransition = "start"
	EventTransitionPause    EventTransition = "pause"
	EventTransitionResume   EventTransition = "resume"
	EventTransitionEnd      EventTransition = "end"
	EventTransitionPost     EventTransition = "post"
)

type eventEdge struct {
	from []EventStatus
	to   EventStatus
}

// eventEdges is the complete lifecycle graph. Nothing leads back to Live from Ended or Closed.
var eventEdges = map[EventTransition]eventEdge{
	EventTransitionSchedule: {from: []EventStatus{EventStatusDraft}, to: EventStatusScheduled},
	EventTransitionStart:    {from: []EventStatus{EventStatusDraft, EventStatusScheduled}, to: EventStatusLive},
	EventTransitionPause:    {from: []EventStatus{EventStatusLive}, to: EventStatusPaused},
	EventTransitionResume:   {from: []EventStatus{EventStatusPaused}, to: EventStatusLive},
	EventTransitionEnd:      {from: []EventStatus{EventStatusLive, EventStatusPaused}, to: EventStatusEnded},
	EventTransitionPost:     {from: []EventStatus{EventStatusEnded, EventStatusClosed}, to: EventStatusClosed},
}

// EventTransitions lists every defined transition.
var EventTransitions = lo.Keys(eventEdges)

// Apply returns the status reached by t, or an errs.InvalidState error when t is not allowed from s.
func (s EventStatus) Apply(t EventTransition) (EventStatus, error) {
	edge, ok := eventEdges[t]
	if !ok {
		return s, errors.Wrapf(errs.InvalidArgument, "unknown event transition %q", t)
	}
	if !lo.Contains(edge.from, s) {
		return s, errors.Wrapf(errs.InvalidState, "cannot %s an event in status %s", t, s)
	}
	return edge.to, nil
}

type Event struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Location    string           `json:"location"`
	StartDate   time.Time        `json:"startDate"`
	EndDate     time.Time        `json:"endDate"`
	Time        string           `json:"time"` // display time, e.g. "10:00 AM"
	Status      EventStatus      `json:"status"`
	Rates       settlement.Rates `json:"rates"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

const minEventNameLength = 5

func (e Event) Validate() error {
	var errList []error
	if len(strings.TrimSpace(e.Name)) < minEventNameLength {
		errList = append(errList, errors.Errorf("name must be at least %d characters", minEventNameLength))
	}
	if strings.TrimSpace(e.Location) == "" {
		errList = append(errList, errors.New("location is required"))
	}
	if e.StartDate.IsZero() {
		errList = append(errList, errors.New("start date is required"))
	}
	if !e.EndDate.IsZero() && e.EndDate.Before(e.StartDate) {
		errList = append(errList, errors.New("end date must not be before start date"))
	}
	if err := e.Rates.Validate(); err != nil {
		errList = append(errList, err)
	}
	if len(errList) > 0 {
		return errs.WithKind(errors.Join(errList...), errs.InvalidArgument)
	}
	return nil
}

// AcceptsSales reports whether sale line items may still be added or removed.
func (e Event) AcceptsSales() bool {
	return e.Status != EventStatusClosed
}

// IsDeletable reports whether the event has not started yet.
func (e Event) IsDeletable() bool {
	return e.Status == EventStatusDraft || e.Status == EventStatusScheduled
}
