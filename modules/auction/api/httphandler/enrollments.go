package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common"
	"github.com/gaze-network/auction-network/common/errs"
	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
	"github.com/gaze-network/auction-network/modules/auction/usecase"
	"github.com/gofiber/fiber/v2"
)

type listEventParticipantsRequest struct {
	Id     string `params:"id"`
	Status string `query:"status"`
}

type listEventParticipantsResult struct {
	List []*entity.EventParticipant `json:"list"`
}

type listEventParticipantsResponse = common.HttpResponse[listEventParticipantsResult]

func (h *HttpHandler) ListEventParticipants(ctx *fiber.Ctx) (err error) {
	var req listEventParticipantsRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}

	participants, err := h.usecase.ListEventParticipants(ctx.UserContext(), req.Id, entity.EnrollmentStatus(req.Status))
	if err != nil {
		return errors.Wrap(err, "error during ListEventParticipants")
	}
	return errors.WithStack(ctx.JSON(listEventParticipantsResponse{Result: &listEventParticipantsResult{List: participants}}))
}

type enrollmentRequest struct {
	Id            string `params:"id"`
	ParticipantId string `params:"participantId"`
	Transition    string `params:"transition"`
}

type enrollmentResponse = common.HttpResponse[entity.Enrollment]

func (h *HttpHandler) GetEnrollment(ctx *fiber.Ctx) (err error) {
	var req enrollmentRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}

	enrollment, err := h.usecase.GetEnrollment(ctx.UserContext(), req.Id, req.ParticipantId)
	if err != nil {
		return errors.Wrap(err, "error during GetEnrollment")
	}
	return errors.WithStack(ctx.JSON(enrollmentResponse{Result: enrollment}))
}

type changeEnrollmentBody struct {
	// PaddleNumber is optional for invite and approve. Empty generates one.
	PaddleNumber string `json:"paddleNumber"`
	// Accept is required to respond to an invitation.
	Accept *bool `json:"accept"`
}

func (h *HttpHandler) ChangeEnrollment(ctx *fiber.Ctx) (err error) {
	var req enrollmentRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	var body changeEnrollmentBody
	if len(ctx.Body()) > 0 {
		if err := parseBody(ctx, &body); err != nil {
			return errors.WithStack(err)
		}
	}

	uctx := ctx.UserContext()
	var enrollment *entity.Enrollment
	switch req.Transition {
	case usecase.EnrollmentTransitionRequest:
		enrollment, err = h.usecase.RequestEnrollment(uctx, req.Id, req.ParticipantId)
	case usecase.EnrollmentTransitionInvite:
		enrollment, err = h.usecase.Invite(uctx, req.Id, req.ParticipantId, body.PaddleNumber)
	case usecase.EnrollmentTransitionRespond:
		if body.Accept == nil {
			return validationError([]error{errors.New("'accept' is required")})
		}
		enrollment, err = h.usecase.RespondToInvitation(uctx, req.Id, req.ParticipantId, *body.Accept)
	case usecase.EnrollmentTransitionApprove:
		enrollment, err = h.usecase.Approve(uctx, req.Id, req.ParticipantId, body.PaddleNumber)
	case usecase.EnrollmentTransitionReject:
		enrollment, err = h.usecase.Reject(uctx, req.Id, req.ParticipantId)
	default:
		return errs.NewPublicErrorKind(errs.NotFound, "unknown enrollment transition "+req.Transition)
	}
	if err != nil {
		return errors.Wrapf(err, "error during enrollment %s", req.Transition)
	}
	return errors.WithStack(ctx.JSON(enrollmentResponse{Result: enrollment}))
}
