package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common"
	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
	"github.com/gaze-network/auction-network/modules/auction/usecase"
	"github.com/gofiber/fiber/v2"
)

type listParticipantsRequest struct {
	Role string `query:"role"`
}

func (r listParticipantsRequest) Validate() error {
	var errList []error
	if r.Role != "" && !entity.ParticipantRole(r.Role).IsValid() {
		errList = append(errList, errors.Errorf("'role' must be one of %v", entity.ParticipantRoles))
	}
	return validationError(errList)
}

type listParticipantsResult struct {
	List []*entity.Participant `json:"list"`
}

type listParticipantsResponse = common.HttpResponse[listParticipantsResult]

func (h *HttpHandler) ListParticipants(ctx *fiber.Ctx) (err error) {
	var req listParticipantsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	participants, err := h.usecase.ListParticipants(ctx.UserContext(), entity.ParticipantRole(req.Role))
	if err != nil {
		return errors.Wrap(err, "error during ListParticipants")
	}
	return errors.WithStack(ctx.JSON(listParticipantsResponse{Result: &listParticipantsResult{List: participants}}))
}

type participantRequest struct {
	Name     string                 `json:"name"`
	Nickname string                 `json:"nickname"`
	Email    string                 `json:"email"`
	Phone    string                 `json:"phone"`
	Role     entity.ParticipantRole `json:"role"`
}

func (r participantRequest) Params() usecase.ParticipantParams {
	return usecase.ParticipantParams{
		Name:     r.Name,
		Nickname: r.Nickname,
		Email:    r.Email,
		Phone:    r.Phone,
		Role:     r.Role,
	}
}

type participantResponse = common.HttpResponse[entity.Participant]

func (h *HttpHandler) CreateParticipant(ctx *fiber.Ctx) (err error) {
	var req participantRequest
	if err := parseBody(ctx, &req); err != nil {
		return errors.WithStack(err)
	}

	participant, err := h.usecase.CreateParticipant(ctx.UserContext(), req.Params())
	if err != nil {
		return errors.Wrap(err, "error during CreateParticipant")
	}
	return errors.WithStack(ctx.Status(fiber.StatusCreated).JSON(participantResponse{Result: participant}))
}

type participantIdRequest struct {
	Id string `params:"id"`
}

func (h *HttpHandler) GetParticipant(ctx *fiber.Ctx) (err error) {
	var req participantIdRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}

	participant, err := h.usecase.GetParticipant(ctx.UserContext(), req.Id)
	if err != nil {
		return errors.Wrap(err, "error during GetParticipant")
	}
	return errors.WithStack(ctx.JSON(participantResponse{Result: participant}))
}

func (h *HttpHandler) UpdateParticipant(ctx *fiber.Ctx) (err error) {
	var params participantIdRequest
	if err := ctx.ParamsParser(&params); err != nil {
		return errors.WithStack(err)
	}
	var req participantRequest
	if err := parseBody(ctx, &req); err != nil {
		return errors.WithStack(err)
	}

	participant, err := h.usecase.UpdateParticipant(ctx.UserContext(), params.Id, req.Params())
	if err != nil {
		return errors.Wrap(err, "error during UpdateParticipant")
	}
	return errors.WithStack(ctx.JSON(participantResponse{Result: participant}))
}

type listEnrollmentsResult struct {
	List []*entity.Enrollment `json:"list"`
}

type listEnrollmentsResponse = common.HttpResponse[listEnrollmentsResult]

func (h *HttpHandler) ListParticipantEnrollments(ctx *fiber.Ctx) (err error) {
	var req participantIdRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}

	enrollments, err := h.usecase.ListParticipantEnrollments(ctx.UserContext(), req.Id)
	if err != nil {
		return errors.Wrap(err, "error during ListParticipantEnrollments")
	}
	return errors.WithStack(ctx.JSON(listEnrollmentsResponse{Result: &listEnrollmentsResult{List: enrollments}}))
}
