package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common"
	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

// lifecycleTransitions are mounted as POST /events/:id/<transition>. Posting has its own handler.
var lifecycleTransitions = []entity.EventTransition{
	entity.EventTransitionSchedule,
	entity.EventTransitionStart,
	entity.EventTransitionPause,
	entity.EventTransitionResume,
	entity.EventTransitionEnd,
}

func (h *HttpHandler) TransitionEvent(transition entity.EventTransition) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		var req eventIdRequest
		if err := ctx.ParamsParser(&req); err != nil {
			return errors.WithStack(err)
		}

		updated, err := h.usecase.TransitionEvent(ctx.UserContext(), req.Id, transition)
		if err != nil {
			return errors.Wrapf(err, "error during TransitionEvent %s", transition)
		}

		result := mapEvent(*updated)
		return errors.WithStack(ctx.JSON(eventResponse{Result: &result}))
	}
}

type postedDocuments struct {
	Event      event                   `json:"event"`
	Invoices   []entity.SellerInvoice  `json:"invoices"`
	Statements []entity.BuyerStatement `json:"statements"`
}

func mapPostedDocuments(docs *entity.PostedDocuments) *postedDocuments {
	return &postedDocuments{
		Event:      mapEvent(docs.Event),
		Invoices:   lo.Ternary(docs.Invoices == nil, []entity.SellerInvoice{}, docs.Invoices),
		Statements: lo.Ternary(docs.Statements == nil, []entity.BuyerStatement{}, docs.Statements),
	}
}

type postEventResponse = common.HttpResponse[postedDocuments]

func (h *HttpHandler) PostEvent(ctx *fiber.Ctx) (err error) {
	var req eventIdRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}

	posted, err := h.usecase.PostEvent(ctx.UserContext(), req.Id)
	if err != nil {
		return errors.Wrap(err, "error during PostEvent")
	}
	return errors.WithStack(ctx.JSON(postEventResponse{Result: mapPostedDocuments(posted)}))
}

func (h *HttpHandler) GetPostedDocuments(ctx *fiber.Ctx) (err error) {
	var req eventIdRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}

	posted, err := h.usecase.GetPostedDocuments(ctx.UserContext(), req.Id)
	if err != nil {
		return errors.Wrap(err, "error during GetPostedDocuments")
	}
	return errors.WithStack(ctx.JSON(postEventResponse{Result: mapPostedDocuments(posted)}))
}
