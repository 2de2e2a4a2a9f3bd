package entity

import (
	"strconv"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var enrollmentTransitions = map[string]func(EnrollmentStatus) (EnrollmentStatus, error){
	"request":        EnrollmentStatus.Request,
	"invite":         EnrollmentStatus.Invite,
	"respond_accept": func(s EnrollmentStatus) (EnrollmentStatus, error) { return s.Respond(true) },
	"respond_reject": func(s EnrollmentStatus) (EnrollmentStatus, error) { return s.Respond(false) },
	"approve":        EnrollmentStatus.Approve,
	"reject":         EnrollmentStatus.Reject,
}

func TestEnrollmentTransitions(t *testing.T) {
	t.Run("request_twice", func(t *testing.T) {
		status, err := EnrollmentStatusNotEnrolled.Request()
		require.NoError(t, err)
		assert.Equal(t, EnrollmentStatusPending, status)

		again, err := status.Request()
		assert.ErrorIs(t, err, errs.InvalidState)
		assert.Equal(t, EnrollmentStatusPending, again)
	})

	t.Run("invite_decline_then_approve", func(t *testing.T) {
		status, err := EnrollmentStatusNotEnrolled.Invite()
		require.NoError(t, err)
		assert.Equal(t, EnrollmentStatusInvited, status)

		status, err = status.Respond(false)
		require.NoError(t, err)
		assert.Equal(t, EnrollmentStatusRejected, status)

		status, err = status.Approve()
		assert.ErrorIs(t, err, errs.InvalidState)
		assert.Equal(t, EnrollmentStatusRejected, status)
	})

	type testCase struct {
		from     EnrollmentStatus
		call     string
		expected EnrollmentStatus
	}
	allowed := []testCase{
		{EnrollmentStatusNotEnrolled, "request", EnrollmentStatusPending},
		{EnrollmentStatusNotEnrolled, "invite", EnrollmentStatusInvited},
		{EnrollmentStatusInvited, "respond_accept", EnrollmentStatusApproved},
		{EnrollmentStatusInvited, "respond_reject", EnrollmentStatusRejected},
		{EnrollmentStatusPending, "approve", EnrollmentStatusApproved},
		{EnrollmentStatusInvited, "approve", EnrollmentStatusApproved},
		{EnrollmentStatusPending, "reject", EnrollmentStatusRejected},
		{EnrollmentStatusInvited, "reject", EnrollmentStatusRejected},
	}
	for _, tc := range allowed {
		t.Run(string(tc.from)+"_"+tc.call, func(t *testing.T) {
			actual, err := enrollmentTransitions[tc.call](tc.from)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestEnrollmentClosure(t *testing.T) {
	for _, from := range EnrollmentStatuses {
		for name, transition := range enrollmentTransitions {
			actual, err := transition(from)
			assert.Truef(t, actual.IsValid(), "%s from %s produced %q", name, from, actual)
			if err != nil {
				assert.Truef(t, errors.Is(err, errs.InvalidState), "%s from %s: %v", name, from, err)
				assert.Equal(t, from, actual)
			}
		}
	}
}

func TestEnrollmentTerminalStates(t *testing.T) {
	for _, from := range []EnrollmentStatus{EnrollmentStatusApproved, EnrollmentStatusRejected} {
		assert.True(t, from.IsTerminal())
		for name, transition := range enrollmentTransitions {
			actual, err := transition(from)
			assert.ErrorIsf(t, err, errs.InvalidState, "%s from %s", name, from)
			assert.Equal(t, from, actual)
		}
	}
}

func TestAssignPaddle(t *testing.T) {
	enrollment := NewEnrollment("event", "participant")
	require.NoError(t, enrollment.AssignPaddle("101"))
	assert.Equal(t, "101", enrollment.PaddleNumber)

	require.NoError(t, enrollment.AssignPaddle("101"), "reassigning the same number is a no-op")

	err := enrollment.AssignPaddle("202")
	assert.ErrorIs(t, err, errs.InvalidState)
	assert.Equal(t, "101", enrollment.PaddleNumber)

	fresh := NewEnrollment("event", "participant")
	for _, invalid := range []string{"", "1234567", "12a", "-1"} {
		assert.ErrorIs(t, fresh.AssignPaddle(invalid), errs.InvalidArgument, invalid)
	}
	assert.Empty(t, fresh.PaddleNumber)
}

func TestGeneratePaddleNumber(t *testing.T) {
	first := func(int) int { return 0 }

	number, err := GeneratePaddleNumber(nil, first)
	require.NoError(t, err)
	assert.Equal(t, "100", number)

	number, err = GeneratePaddleNumber([]string{"100", "101", "5"}, first)
	require.NoError(t, err)
	assert.Equal(t, "102", number)

	taken := make([]string, 0, 900)
	for n := 100; n <= 999; n++ {
		taken = append(taken, strconv.Itoa(n))
	}
	_, err = GeneratePaddleNumber(taken, first)
	assert.ErrorIs(t, err, errs.Conflict)

	number, err = GeneratePaddleNumber(taken[:899], func(n int) int {
		assert.Equal(t, 1, n)
		return 0
	})
	require.NoError(t, err)
	assert.Equal(t, "999", number)
}
