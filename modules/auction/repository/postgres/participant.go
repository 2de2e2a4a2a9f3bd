package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
	"github.com/gaze-network/auction-network/modules/auction/repository/postgres/gen"
	"github.com/samber/lo"
)

func (r *Repository) GetParticipant(ctx context.Context, id string) (*entity.Participant, error) {
	model, err := r.queries.GetParticipant(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(wrapQueryError(err), "participant %s", id)
	}
	return lo.ToPtr(mapParticipantModelToType(model)), nil
}

func (r *Repository) ListParticipants(ctx context.Context, role entity.ParticipantRole) ([]*entity.Participant, error) {
	models, err := r.queries.ListParticipants(ctx, string(role))
	if err != nil {
		return nil, wrapQueryError(err)
	}
	return lo.Map(models, func(model gen.AuctionParticipant, _ int) *entity.Participant {
		return lo.ToPtr(mapParticipantModelToType(model))
	}), nil
}

func (r *Repository) CreateParticipant(ctx context.Context, participant *entity.Participant) error {
	err := r.queries.CreateParticipant(ctx, gen.CreateParticipantParams{
		ID:        participant.ID,
		Name:      participant.Name,
		Nickname:  participant.Nickname,
		Email:     participant.Email,
		Phone:     participant.Phone,
		Role:      string(participant.Role),
		CreatedAt: timestamptzFromTime(participant.CreatedAt),
		UpdatedAt: timestamptzFromTime(participant.UpdatedAt),
	})
	if err != nil {
		return errors.Wrapf(wrapQueryError(err), "participant %s", participant.ID)
	}
	return nil
}

func (r *Repository) UpdateParticipant(ctx context.Context, participant *entity.Participant) error {
	rows, err := r.queries.UpdateParticipant(ctx, gen.UpdateParticipantParams{
		ID:        participant.ID,
		Name:      participant.Name,
		Nickname:  participant.Nickname,
		Email:     participant.Email,
		Phone:     participant.Phone,
		Role:      string(participant.Role),
		UpdatedAt: timestamptzFromTime(participant.UpdatedAt),
	})
	return expectAffected(rows, err, "participant %s", participant.ID)
}

func (r *Repository) GetEnrollment(ctx context.Context, eventID, participantID string) (*entity.Enrollment, error) {
	model, err := r.queries.GetEnrollment(ctx, gen.GetEnrollmentParams{
		EventID:       eventID,
		ParticipantID: participantID,
	})
	if err != nil {
		return nil, errors.Wrapf(wrapQueryError(err), "enrollment of participant %s in event %s", participantID, eventID)
	}
	return lo.ToPtr(mapEnrollmentModelToType(model)), nil
}

func (r *Repository) GetEnrollmentByPaddle(ctx context.Context, eventID, paddleNumber string) (*entity.Enrollment, error) {
	model, err := r.queries.GetEnrollmentByPaddle(ctx, gen.GetEnrollmentByPaddleParams{
		EventID:      eventID,
		PaddleNumber: textFromString(paddleNumber),
	})
	if err != nil {
		return nil, errors.Wrapf(wrapQueryError(err), "paddle %s in event %s", paddleNumber, eventID)
	}
	return lo.ToPtr(mapEnrollmentModelToType(model)), nil
}

func mapEnrollments(models []gen.AuctionEnrollment) []*entity.Enrollment {
	return lo.Map(models, func(model gen.AuctionEnrollment, _ int) *entity.Enrollment {
		return lo.ToPtr(mapEnrollmentModelToType(model))
	})
}

func (r *Repository) ListEnrollmentsByEvent(ctx context.Context, eventID string) ([]*entity.Enrollment, error) {
	models, err := r.queries.ListEnrollmentsByEvent(ctx, eventID)
	if err != nil {
		return nil, wrapQueryError(err)
	}
	return mapEnrollments(models), nil
}

func (r *Repository) ListEnrollmentsByParticipant(ctx context.Context, participantID string) ([]*entity.Enrollment, error) {
	models, err := r.queries.ListEnrollmentsByParticipant(ctx, participantID)
	if err != nil {
		return nil, wrapQueryError(err)
	}
	return mapEnrollments(models), nil
}

func (r *Repository) UpsertEnrollment(ctx context.Context, enrollment *entity.Enrollment) error {
	err := r.queries.UpsertEnrollment(ctx, gen.UpsertEnrollmentParams{
		EventID:       enrollment.EventID,
		ParticipantID: enrollment.ParticipantID,
		Status:        enrollment.Status.String(),
		PaddleNumber:  textFromString(enrollment.PaddleNumber),
		CreatedAt:     timestamptzFromTime(enrollment.CreatedAt),
		UpdatedAt:     timestamptzFromTime(enrollment.UpdatedAt),
	})
	if err != nil {
		return errors.Wrapf(wrapQueryError(err), "enrollment of participant %s in event %s", enrollment.ParticipantID, enrollment.EventID)
	}
	return nil
}

func (r *Repository) ListPaddleNumbers(ctx context.Context, eventID string) ([]string, error) {
	numbers, err := r.queries.ListPaddleNumbers(ctx, eventID)
	if err != nil {
		return nil, wrapQueryError(err)
	}
	return numbers, nil
}
