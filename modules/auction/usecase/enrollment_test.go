package usecase

import (
	"context"
	"testing"

	"github.com/gaze-network/auction-network/common/errs"
	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
	"github.com/gaze-network/auction-network/modules/auction/notifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollment(t *testing.T) {
	ctx := context.Background()

	t.Run("request then approve", func(t *testing.T) {
		env := newTestEnv(t)
		event := env.createEvent(t, "Spring Estate Sale")
		bidder := env.createParticipant(t, "bea", entity.ParticipantRoleBidder)

		initial, err := env.uc.GetEnrollment(ctx, event.ID, bidder.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.EnrollmentStatusNotEnrolled, initial.Status)

		pending, err := env.uc.RequestEnrollment(ctx, event.ID, bidder.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.EnrollmentStatusPending, pending.Status)
		assert.Empty(t, pending.PaddleNumber)

		_, err = env.uc.RequestEnrollment(ctx, event.ID, bidder.ID)
		assert.ErrorIs(t, err, errs.InvalidState)

		approved, err := env.uc.Approve(ctx, event.ID, bidder.ID, "")
		require.NoError(t, err)
		assert.Equal(t, entity.EnrollmentStatusApproved, approved.Status)
		assert.Equal(t, "100", approved.PaddleNumber)

		_, err = env.uc.Reject(ctx, event.ID, bidder.ID)
		assert.ErrorIs(t, err, errs.InvalidState)

		stored, err := env.uc.GetEnrollment(ctx, event.ID, bidder.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.EnrollmentStatusApproved, stored.Status)
		assert.Equal(t, "100", stored.PaddleNumber)

		assert.Equal(t, []string{
			notifier.TypeEnrollmentStatusChanged,
			notifier.TypeEnrollmentStatusChanged,
		}, env.publisher.kinds())
	})

	t.Run("invite keeps its paddle", func(t *testing.T) {
		env := newTestEnv(t)
		event := env.createEvent(t, "Spring Estate Sale")
		bidder := env.createParticipant(t, "bea", entity.ParticipantRoleBidder)

		invited, err := env.uc.Invite(ctx, event.ID, bidder.ID, "42")
		require.NoError(t, err)
		assert.Equal(t, entity.EnrollmentStatusInvited, invited.Status)
		assert.Equal(t, "42", invited.PaddleNumber)

		_, err = env.uc.Approve(ctx, event.ID, bidder.ID, "43")
		assert.ErrorIs(t, err, errs.InvalidState)

		approved, err := env.uc.RespondToInvitation(ctx, event.ID, bidder.ID, true)
		require.NoError(t, err)
		assert.Equal(t, entity.EnrollmentStatusApproved, approved.Status)
		assert.Equal(t, "42", approved.PaddleNumber)
	})

	t.Run("declined invitation is final", func(t *testing.T) {
		env := newTestEnv(t)
		event := env.createEvent(t, "Spring Estate Sale")
		bidder := env.createParticipant(t, "bea", entity.ParticipantRoleBidder)

		_, err := env.uc.Invite(ctx, event.ID, bidder.ID, "")
		require.NoError(t, err)
		rejected, err := env.uc.RespondToInvitation(ctx, event.ID, bidder.ID, false)
		require.NoError(t, err)
		assert.Equal(t, entity.EnrollmentStatusRejected, rejected.Status)

		_, err = env.uc.Approve(ctx, event.ID, bidder.ID, "")
		assert.ErrorIs(t, err, errs.InvalidState)
		_, err = env.uc.RequestEnrollment(ctx, event.ID, bidder.ID)
		assert.ErrorIs(t, err, errs.InvalidState)
	})

	t.Run("paddle taken", func(t *testing.T) {
		env := newTestEnv(t)
		event := env.createEvent(t, "Spring Estate Sale")
		first := env.createParticipant(t, "bea", entity.ParticipantRoleBidder)
		second := env.createParticipant(t, "bob", entity.ParticipantRoleBuyer)

		_, err := env.uc.Invite(ctx, event.ID, first.ID, "100")
		require.NoError(t, err)
		_, err = env.uc.Invite(ctx, event.ID, second.ID, "100")
		assert.ErrorIs(t, err, errs.Conflict)

		generated, err := env.uc.Invite(ctx, event.ID, second.ID, "")
		require.NoError(t, err)
		assert.Equal(t, "101", generated.PaddleNumber)

		_, err = env.uc.Invite(ctx, event.ID, second.ID, "12a")
		assert.ErrorIs(t, err, errs.InvalidArgument)
	})

	t.Run("unknown event or participant", func(t *testing.T) {
		env := newTestEnv(t)
		event := env.createEvent(t, "Spring Estate Sale")
		bidder := env.createParticipant(t, "bea", entity.ParticipantRoleBidder)

		_, err := env.uc.RequestEnrollment(ctx, "missing", bidder.ID)
		assert.ErrorIs(t, err, errs.NotFound)
		_, err = env.uc.RequestEnrollment(ctx, event.ID, "missing")
		assert.ErrorIs(t, err, errs.NotFound)
	})
}

func TestListEventParticipants(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	event := env.createEvent(t, "Spring Estate Sale")
	bea := env.createParticipant(t, "bea", entity.ParticipantRoleBidder)
	bob := env.createParticipant(t, "bob", entity.ParticipantRoleBuyer)
	env.createParticipant(t, "cid", entity.ParticipantRoleSeller)

	_, err := env.uc.RequestEnrollment(ctx, event.ID, bea.ID)
	require.NoError(t, err)
	_, err = env.uc.Invite(ctx, event.ID, bob.ID, "7")
	require.NoError(t, err)

	all, err := env.uc.ListEventParticipants(ctx, event.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	invited, err := env.uc.ListEventParticipants(ctx, event.ID, entity.EnrollmentStatusInvited)
	require.NoError(t, err)
	require.Len(t, invited, 1)
	assert.Equal(t, bob.ID, invited[0].ID)
	assert.Equal(t, "7", invited[0].Enrollment.PaddleNumber)

	notEnrolled, err := env.uc.ListEventParticipants(ctx, event.ID, entity.EnrollmentStatusNotEnrolled)
	require.NoError(t, err)
	require.Len(t, notEnrolled, 1)
	assert.Equal(t, "cid", notEnrolled[0].Name)

	_, err = env.uc.ListEventParticipants(ctx, event.ID, "maybe")
	assert.ErrorIs(t, err, errs.InvalidArgument)

	enrollments, err := env.uc.ListParticipantEnrollments(ctx, bea.ID)
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	assert.Equal(t, entity.EnrollmentStatusPending, enrollments[0].Status)
}
