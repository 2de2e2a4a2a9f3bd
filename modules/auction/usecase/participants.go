package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common/errs"
	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
)

type ParticipantParams struct {
	Name     string
	Nickname string
	Email    string
	Phone    string
	Role     entity.ParticipantRole
}

func (u *Usecase) CreateParticipant(ctx context.Context, params ParticipantParams) (*entity.Participant, error) {
	now := u.timestamp()
	participant := entity.Participant{
		ID:        u.newID(),
		Name:      params.Name,
		Nickname:  params.Nickname,
		Email:     params.Email,
		Phone:     params.Phone,
		Role:      params.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := participant.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := u.auctionDg.CreateParticipant(ctx, &participant); err != nil {
		return nil, errors.Wrap(err, "error during CreateParticipant")
	}
	return &participant, nil
}

func (u *Usecase) UpdateParticipant(ctx context.Context, id string, params ParticipantParams) (*entity.Participant, error) {
	participant, err := u.auctionDg.GetParticipant(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetParticipant")
	}
	participant.Name = params.Name
	participant.Nickname = params.Nickname
	participant.Email = params.Email
	participant.Phone = params.Phone
	participant.Role = params.Role
	participant.UpdatedAt = u.timestamp()
	if err := participant.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := u.auctionDg.UpdateParticipant(ctx, participant); err != nil {
		return nil, errors.Wrap(err, "error during UpdateParticipant")
	}
	return participant, nil
}

func (u *Usecase) GetParticipant(ctx context.Context, id string) (*entity.Participant, error) {
	participant, err := u.auctionDg.GetParticipant(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "error during GetParticipant")
	}
	return participant, nil
}

func (u *Usecase) ListParticipants(ctx context.Context, role entity.ParticipantRole) ([]*entity.Participant, error) {
	if role != "" && !role.IsValid() {
		return nil, errors.Wrapf(errs.InvalidArgument, "unknown participant role %q", role)
	}
	participants, err := u.auctionDg.ListParticipants(ctx, role)
	if err != nil {
		return nil, errors.Wrap(err, "error during ListParticipants")
	}
	return participants, nil
}
