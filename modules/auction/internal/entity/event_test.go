package entity

import (
	"testing"
	"time"

	"github.com/gaze-network/auction-network/common/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventLifecycle(t *testing.T) {
	status := EventStatusDraft
	steps := []struct {
		transition EventTransition
		expected   EventStatus
	}{
		{EventTransitionStart, EventStatusLive},
		{EventTransitionPause, EventStatusPaused},
		{EventTransitionResume, EventStatusLive},
		{EventTransitionEnd, EventStatusEnded},
		{EventTransitionPost, EventStatusClosed},
	}
	for _, step := range steps {
		next, err := status.Apply(step.transition)
		require.NoErrorf(t, err, "%s from %s", step.transition, status)
		assert.Equal(t, step.expected, next)
		status = next
	}

	for _, transition := range []EventTransition{EventTransitionStart, EventTransitionResume} {
		next, err := status.Apply(transition)
		assert.ErrorIs(t, err, errs.InvalidState)
		assert.Equal(t, EventStatusClosed, next)
	}

	reposted, err := status.Apply(EventTransitionPost)
	require.NoError(t, err)
	assert.Equal(t, EventStatusClosed, reposted)
}

func TestEventTransitionTable(t *testing.T) {
	testCases := []struct {
		from       EventStatus
		transition EventTransition
		expected   EventStatus
		ok         bool
	}{
		{EventStatusDraft, EventTransitionSchedule, EventStatusScheduled, true},
		{EventStatusScheduled, EventTransitionStart, EventStatusLive, true},
		{EventStatusPaused, EventTransitionEnd, EventStatusEnded, true},
		{EventStatusScheduled, EventTransitionSchedule, EventStatusScheduled, false},
		{EventStatusDraft, EventTransitionPause, EventStatusDraft, false},
		{EventStatusLive, EventTransitionPost, EventStatusLive, false},
		{EventStatusDraft, EventTransitionEnd, EventStatusDraft, false},
		{EventStatusEnded, EventTransitionPause, EventStatusEnded, false},
	}
	for _, tc := range testCases {
		t.Run(string(tc.from)+"_"+string(tc.transition), func(t *testing.T) {
			actual, err := tc.from.Apply(tc.transition)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, errs.InvalidState)
			}
			assert.Equal(t, tc.expected, actual)
		})
	}

	_, err := EventStatusDraft.Apply("teleport")
	assert.ErrorIs(t, err, errs.InvalidArgument)
}

func TestEventNeverReturnsToLive(t *testing.T) {
	// walk every reachable status from Ended and Closed
	seen := map[EventStatus]bool{}
	queue := []EventStatus{EventStatusEnded, EventStatusClosed}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if seen[current] {
			continue
		}
		seen[current] = true
		for _, transition := range EventTransitions {
			next, err := current.Apply(transition)
			if err != nil {
				assert.Equal(t, current, next)
				continue
			}
			assert.True(t, next.IsValid())
			queue = append(queue, next)
		}
	}
	assert.False(t, seen[EventStatusLive])
	assert.False(t, seen[EventStatusPaused])
}

func TestEventValidate(t *testing.T) {
	valid := Event{
		Name:      "Spring Estate Sale",
		Location:  "Austin, TX",
		StartDate: time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 4, 16, 0, 0, 0, 0, time.UTC),
		Rates:     DefaultRates(),
	}
	require.NoError(t, valid.Validate())

	invalid := valid
	invalid.Name = "Sale"
	invalid.EndDate = valid.StartDate.Add(-time.Hour)
	assert.ErrorIs(t, invalid.Validate(), errs.InvalidArgument)

	assert.True(t, Event{Status: EventStatusEnded}.AcceptsSales())
	assert.False(t, Event{Status: EventStatusClosed}.AcceptsSales())
}
