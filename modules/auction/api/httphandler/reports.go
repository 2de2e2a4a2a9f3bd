package httphandler

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common"
	"github.com/gaze-network/auction-network/modules/auction/export"
	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
	"github.com/gofiber/fiber/v2"
)

type getEventReportResponse = common.HttpResponse[entity.EventReport]

func (h *HttpHandler) GetEventReport(ctx *fiber.Ctx) (err error) {
	var req eventIdRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}

	report, err := h.usecase.GetEventReport(ctx.UserContext(), req.Id)
	if err != nil {
		return errors.Wrap(err, "error during GetEventReport")
	}
	return errors.WithStack(ctx.JSON(getEventReportResponse{Result: report}))
}

type getDashboardSummaryResponse = common.HttpResponse[entity.DashboardSummary]

func (h *HttpHandler) GetDashboardSummary(ctx *fiber.Ctx) (err error) {
	summary, err := h.usecase.GetDashboardSummary(ctx.UserContext())
	if err != nil {
		return errors.Wrap(err, "error during GetDashboardSummary")
	}
	return errors.WithStack(ctx.JSON(getDashboardSummaryResponse{Result: summary}))
}

type exportEventSalesRequest struct {
	Id     string `params:"id"`
	Format string `query:"format"`
}

// ExportEventSales responds with the settled sales as a file attachment.
func (h *HttpHandler) ExportEventSales(ctx *fiber.Ctx) (err error) {
	var req exportEventSalesRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}
	if err := ctx.QueryParser(&req); err != nil {
		return errors.WithStack(err)
	}
	format, err := export.ParseFormat(req.Format)
	if err != nil {
		return errors.WithStack(err)
	}

	data, err := h.usecase.ExportEventSales(ctx.UserContext(), req.Id, format)
	if err != nil {
		return errors.Wrap(err, "error during ExportEventSales")
	}

	ctx.Set(fiber.HeaderContentType, format.ContentType())
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="event-%s-sales.%s"`, req.Id, format.Extension()))
	return errors.WithStack(ctx.Send(data))
}
