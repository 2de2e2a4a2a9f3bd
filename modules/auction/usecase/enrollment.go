package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common/errs"
	"github.com/gaze-network/auction-network/modules/auction/datagateway"
	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
	"github.com/gaze-network/auction-network/modules/auction/notifier"
	"github.com/samber/lo"
)

const (
	EnrollmentTransitionRequest = "request"
	EnrollmentTransitionInvite  = "invite"
	EnrollmentTransitionRespond = "respond"
	EnrollmentTransitionApprove = "approve"
	EnrollmentTransitionReject  = "reject"
)

type EnrollmentStatusChanged struct {
	EventID       string                  `json:"eventId"`
	ParticipantID string                  `json:"participantId"`
	Transition    string                  `json:"transition"`
	From          entity.EnrollmentStatus `json:"from"`
	To            entity.EnrollmentStatus `json:"to"`
	PaddleNumber  string                  `json:"paddleNumber,omitempty"`
}

type enrollmentChange struct {
	name  string
	apply func(entity.EnrollmentStatus) (entity.EnrollmentStatus, error)
	// paddle is the requested paddle number, empty generates one when the new status needs a paddle.
	paddle string
}

// RequestEnrollment is a participant asking to join an event.
func (u *Usecase) RequestEnrollment(ctx context.Context, eventID, participantID string) (*entity.Enrollment, error) {
	return u.changeEnrollment(ctx, eventID, participantID, enrollmentChange{
		name:  EnrollmentTransitionRequest,
		apply: entity.EnrollmentStatus.Request,
	})
}

// Invite is the operator inviting a participant. The paddle number is assigned now.
func (u *Usecase) Invite(ctx context.Context, eventID, participantID, paddleNumber string) (*entity.Enrollment, error) {
	return u.changeEnrollment(ctx, eventID, participantID, enrollmentChange{
		name:   EnrollmentTransitionInvite,
		apply:  entity.EnrollmentStatus.Invite,
		paddle: paddleNumber,
	})
}

func (u *Usecase) RespondToInvitation(ctx context.Context, eventID, participantID string, accept bool) (*entity.Enrollment, error) {
	return u.changeEnrollment(ctx, eventID, participantID, enrollmentChange{
		name: EnrollmentTransitionRespond,
		apply: func(s entity.EnrollmentStatus) (entity.EnrollmentStatus, error) {
			return s.Respond(accept)
		},
	})
}

func (u *Usecase) Approve(ctx context.Context, eventID, participantID, paddleNumber string) (*entity.Enrollment, error) {
	return u.changeEnrollment(ctx, eventID, participantID, enrollmentChange{
		name:   EnrollmentTransitionApprove,
		apply:  entity.EnrollmentStatus.Approve,
		paddle: paddleNumber,
	})
}

func (u *Usecase) Reject(ctx context.Context, eventID, participantID string) (*entity.Enrollment, error) {
	return u.changeEnrollment(ctx, eventID, participantID, enrollmentChange{
		name:  EnrollmentTransitionReject,
		apply: entity.EnrollmentStatus.Reject,
	})
}

func (u *Usecase) changeEnrollment(ctx context.Context, eventID, participantID string, change enrollmentChange) (*entity.Enrollment, error) {
	if change.paddle != "" {
		if err := entity.ValidatePaddleNumber(change.paddle); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	tx, err := u.auctionDg.BeginAuctionTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	enrollment, err := loadEnrollment(ctx, tx, eventID, participantID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	from := enrollment.Status
	to, err := change.apply(from)
	u.metrics.transition(MachineEnrollment, change.name, err)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if to == entity.EnrollmentStatusInvited || to == entity.EnrollmentStatusApproved {
		if err := u.assignPaddle(ctx, tx, enrollment, change.paddle); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	now := u.timestamp()
	if enrollment.CreatedAt.IsZero() {
		enrollment.CreatedAt = now
	}
	enrollment.Status = to
	enrollment.UpdatedAt = now
	if err := tx.UpsertEnrollment(ctx, enrollment); err != nil {
		return nil, errors.Wrap(err, "error during UpsertEnrollment")
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to commit transaction")
	}

	u.publisher.Publish(ctx, notifier.TypeEnrollmentStatusChanged, EnrollmentStatusChanged{
		EventID:       eventID,
		ParticipantID: participantID,
		Transition:    change.name,
		From:          from,
		To:            to,
		PaddleNumber:  enrollment.PaddleNumber,
	})
	return enrollment, nil
}

// assignPaddle keeps an existing paddle number, otherwise it assigns the requested one or a generated one.
func (u *Usecase) assignPaddle(ctx context.Context, dg datagateway.ParticipantDataGateway, enrollment *entity.Enrollment, requested string) error {
	if enrollment.PaddleNumber != "" && requested == "" {
		return nil
	}
	number := requested
	if number == "" {
		taken, err := dg.ListPaddleNumbers(ctx, enrollment.EventID)
		if err != nil {
			return errors.Wrap(err, "error during ListPaddleNumbers")
		}
		number, err = entity.GeneratePaddleNumber(taken, u.intn)
		if err != nil {
			return errors.WithStack(err)
		}
	} else {
		holder, err := dg.GetEnrollmentByPaddle(ctx, enrollment.EventID, number)
		switch {
		case err == nil && holder.ParticipantID != enrollment.ParticipantID:
			return errors.Wrapf(errs.Conflict, "paddle %s is already taken", number)
		case err != nil && !errors.Is(err, errs.NotFound):
			return errors.Wrap(err, "error during GetEnrollmentByPaddle")
		}
	}
	return errors.WithStack(enrollment.AssignPaddle(number))
}

// loadEnrollment returns the enrollment of an existing participant in an existing event.
// A participant that never enrolled gets a not_enrolled enrollment.
func loadEnrollment(ctx context.Context, dg datagateway.AuctionDataGateway, eventID, participantID string) (*entity.Enrollment, error) {
	if _, err := dg.GetEvent(ctx, eventID); err != nil {
		return nil, errors.Wrap(err, "error during GetEvent")
	}
	if _, err := dg.GetParticipant(ctx, participantID); err != nil {
		return nil, errors.Wrap(err, "error during GetParticipant")
	}
	enrollment, err := dg.GetEnrollment(ctx, eventID, participantID)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			initial := entity.NewEnrollment(eventID, participantID)
			return &initial, nil
		}
		return nil, errors.Wrap(err, "error during GetEnrollment")
	}
	return enrollment, nil
}

func (u *Usecase) GetEnrollment(ctx context.Context, eventID, participantID string) (*entity.Enrollment, error) {
	enrollment, err := loadEnrollment(ctx, u.auctionDg, eventID, participantID)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return enrollment, nil
}

// ListEventParticipants returns every participant with its enrollment status in the event.
// Participants that never enrolled are listed as not_enrolled.
func (u *Usecase) ListEventParticipants(ctx context.Context, eventID string, status entity.EnrollmentStatus) ([]*entity.EventParticipant, error) {
	if status != "" && !status.IsValid() {
		return nil, errors.Wrapf(errs.InvalidArgument, "unknown enrollment status %q", status)
	}
	if _, err := u.auctionDg.GetEvent(ctx, eventID); err != nil {
		return nil, errors.Wrap(err, "error during GetEvent")
	}
	participants, err := u.auctionDg.ListParticipants(ctx, "")
	if err != nil {
		return nil, errors.Wrap(err, "error during ListParticipants")
	}
	enrollments, err := u.auctionDg.ListEnrollmentsByEvent(ctx, eventID)
	if err != nil {
		return nil, errors.Wrap(err, "error during ListEnrollmentsByEvent")
	}
	byParticipant := lo.KeyBy(enrollments, func(e *entity.Enrollment) string { return e.ParticipantID })

	result := make([]*entity.EventParticipant, 0, len(participants))
	for _, participant := range participants {
		enrollment := entity.NewEnrollment(eventID, participant.ID)
		if e, ok := byParticipant[participant.ID]; ok {
			enrollment = *e
		}
		if status != "" && enrollment.Status != status {
			continue
		}
		result = append(result, &entity.EventParticipant{
			Participant: *participant,
			Enrollment:  enrollment,
		})
	}
	return result, nil
}

func (u *Usecase) ListParticipantEnrollments(ctx context.Context, participantID string) ([]*entity.Enrollment, error) {
	if _, err := u.auctionDg.GetParticipant(ctx, participantID); err != nil {
		return nil, errors.Wrap(err, "error during GetParticipant")
	}
	enrollments, err := u.auctionDg.ListEnrollmentsByParticipant(ctx, participantID)
	if err != nil {
		return nil, errors.Wrap(err, "error during ListEnrollmentsByParticipant")
	}
	return enrollments, nil
}
