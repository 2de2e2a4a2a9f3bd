package httphandler

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common"
	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
	"github.com/gaze-network/auction-network/modules/auction/settlement"
	"github.com/gaze-network/auction-network/modules/auction/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type event struct {
	Id          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Location    string             `json:"location"`
	StartDate   string             `json:"startDate"`
	EndDate     string             `json:"endDate,omitempty"`
	Time        string             `json:"time"`
	Status      entity.EventStatus `json:"status"`
	Rates       settlement.Rates   `json:"rates"`
	CreatedAt   int64              `json:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt"`
}

func mapEvent(e entity.Event) event {
	return event{
		Id:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Location:    e.Location,
		StartDate:   formatDate(e.StartDate),
		EndDate:     formatDate(e.EndDate),
		Time:        e.Time,
		Status:      e.Status,
		Rates:       e.Rates,
		CreatedAt:   e.CreatedAt.Unix(),
		UpdatedAt:   e.UpdatedAt.Unix(),
	}
}

type listEventsRequest struct {
	Status string `query:"status"`
}

type listEventsResult struct {
	List []event `json:"list"`
}

type listEventsResponse = common.HttpResponse[listEventsResult]

func (h *HttpHandler) ListEvents(ctx *fiber.Ctx) (err error) {
	var req listEventsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}

	events, err := h.usecase.ListEvents(ctx.UserContext(), entity.EventStatus(req.Status))
	if err != nil {
		return errors.Wrap(err, "error during ListEvents")
	}

	resp := listEventsResponse{
		Result: &listEventsResult{
			List: lo.Map(events, func(e *entity.Event, _ int) event { return mapEvent(*e) }),
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}

type eventRequest struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Location    string            `json:"location"`
	StartDate   string            `json:"startDate"`
	EndDate     string            `json:"endDate"`
	Time        string            `json:"time"`
	Rates       *settlement.Rates `json:"rates"`
}

func (r eventRequest) Params() (usecase.EventParams, error) {
	var errList []error
	if strings.TrimSpace(r.StartDate) == "" {
		errList = append(errList, errors.New("'startDate' is required"))
	}
	params := usecase.EventParams{
		Name:        r.Name,
		Description: r.Description,
		Location:    r.Location,
		StartDate:   parseDate("startDate", r.StartDate, &errList),
		EndDate:     parseDate("endDate", r.EndDate, &errList),
		Time:        r.Time,
		Rates:       r.Rates,
	}
	return params, validationError(errList)
}

type eventResponse = common.HttpResponse[event]

func (h *HttpHandler) CreateEvent(ctx *fiber.Ctx) (err error) {
	var req eventRequest
	if err := parseBody(ctx, &req); err != nil {
		return errors.WithStack(err)
	}
	params, err := req.Params()
	if err != nil {
		return errors.WithStack(err)
	}

	created, err := h.usecase.CreateEvent(ctx.UserContext(), params)
	if err != nil {
		return errors.Wrap(err, "error during CreateEvent")
	}

	result := mapEvent(*created)
	return errors.WithStack(ctx.Status(fiber.StatusCreated).JSON(eventResponse{Result: &result}))
}

type eventIdRequest struct {
	Id string `params:"id"`
}

type updateEventRequest struct {
	eventIdRequest
	eventRequest
}

func (h *HttpHandler) UpdateEvent(ctx *fiber.Ctx) (err error) {
	var req updateEventRequest
	if err := ctx.ParamsParser(&req.eventIdRequest); err != nil {
		return errors.WithStack(err)
	}
	if err := parseBody(ctx, &req.eventRequest); err != nil {
		return errors.WithStack(err)
	}
	params, err := req.Params()
	if err != nil {
		return errors.WithStack(err)
	}

	updated, err := h.usecase.UpdateEvent(ctx.UserContext(), req.Id, params)
	if err != nil {
		return errors.Wrap(err, "error during UpdateEvent")
	}

	result := mapEvent(*updated)
	return errors.WithStack(ctx.JSON(eventResponse{Result: &result}))
}

type eventDetails struct {
	event
	Stats entity.EventStats `json:"stats"`
}

type getEventDetailsResponse = common.HttpResponse[eventDetails]

func (h *HttpHandler) GetEventDetails(ctx *fiber.Ctx) (err error) {
	var req eventIdRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}

	details, err := h.usecase.GetEventDetails(ctx.UserContext(), req.Id)
	if err != nil {
		return errors.Wrap(err, "error during GetEventDetails")
	}

	resp := getEventDetailsResponse{
		Result: &eventDetails{
			event: mapEvent(details.Event),
			Stats: details.Stats,
		},
	}
	return errors.WithStack(ctx.JSON(resp))
}

func (h *HttpHandler) DeleteEvent(ctx *fiber.Ctx) (err error) {
	var req eventIdRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.usecase.DeleteEvent(ctx.UserContext(), req.Id); err != nil {
		return errors.Wrap(err, "error during DeleteEvent")
	}
	return errors.WithStack(ctx.SendStatus(fiber.StatusNoContent))
}
