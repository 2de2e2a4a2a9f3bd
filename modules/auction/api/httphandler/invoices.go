package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common"
	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
	"github.com/gofiber/fiber/v2"
)

type invoiceIdRequest struct {
	Id string `params:"id"`
}

type sellerInvoiceResponse = common.HttpResponse[entity.SellerInvoice]

func (h *HttpHandler) MarkInvoicePaid(ctx *fiber.Ctx) (err error) {
	var req invoiceIdRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}

	invoice, err := h.usecase.MarkInvoicePaid(ctx.UserContext(), req.Id)
	if err != nil {
		return errors.Wrap(err, "error during MarkInvoicePaid")
	}
	return errors.WithStack(ctx.JSON(sellerInvoiceResponse{Result: invoice}))
}

type buyerStatementResponse = common.HttpResponse[entity.BuyerStatement]

func (h *HttpHandler) MarkStatementPaid(ctx *fiber.Ctx) (err error) {
	var req invoiceIdRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}

	statement, err := h.usecase.MarkStatementPaid(ctx.UserContext(), req.Id)
	if err != nil {
		return errors.Wrap(err, "error during MarkStatementPaid")
	}
	return errors.WithStack(ctx.JSON(buyerStatementResponse{Result: statement}))
}

type listSellerInvoicesResult struct {
	List []*entity.SellerInvoice `json:"list"`
}

type listSellerInvoicesResponse = common.HttpResponse[listSellerInvoicesResult]

func (h *HttpHandler) ListSellerInvoices(ctx *fiber.Ctx) (err error) {
	var req participantIdRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}

	invoices, err := h.usecase.ListSellerInvoices(ctx.UserContext(), req.Id)
	if err != nil {
		return errors.Wrap(err, "error during ListSellerInvoices")
	}
	return errors.WithStack(ctx.JSON(listSellerInvoicesResponse{Result: &listSellerInvoicesResult{List: invoices}}))
}

type listBuyerStatementsResult struct {
	List []*entity.BuyerStatement `json:"list"`
}

type listBuyerStatementsResponse = common.HttpResponse[listBuyerStatementsResult]

func (h *HttpHandler) ListBuyerStatements(ctx *fiber.Ctx) (err error) {
	var req participantIdRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}

	statements, err := h.usecase.ListBuyerStatements(ctx.UserContext(), req.Id)
	if err != nil {
		return errors.Wrap(err, "error during ListBuyerStatements")
	}
	return errors.WithStack(ctx.JSON(listBuyerStatementsResponse{Result: &listBuyerStatementsResult{List: statements}}))
}

type getBuyerPurchasesResult struct {
	List []entity.Purchase `json:"list"`
}

type getBuyerPurchasesResponse = common.HttpResponse[getBuyerPurchasesResult]

func (h *HttpHandler) GetBuyerPurchases(ctx *fiber.Ctx) (err error) {
	var req participantIdRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}

	purchases, err := h.usecase.GetBuyerPurchases(ctx.UserContext(), req.Id)
	if err != nil {
		return errors.Wrap(err, "error during GetBuyerPurchases")
	}
	return errors.WithStack(ctx.JSON(getBuyerPurchasesResponse{Result: &getBuyerPurchasesResult{List: purchases}}))
}
