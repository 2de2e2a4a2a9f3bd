package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common"
	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
	"github.com/gaze-network/auction-network/modules/auction/settlement"
	"github.com/gaze-network/auction-network/modules/auction/usecase"
	"github.com/gofiber/fiber/v2"
)

type getSalesResult struct {
	List []*entity.Sale `json:"list"`
}

type getSalesResponse = common.HttpResponse[getSalesResult]

func (h *HttpHandler) GetSales(ctx *fiber.Ctx) (err error) {
	var req eventIdRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}

	sales, err := h.usecase.GetSales(ctx.UserContext(), req.Id)
	if err != nil {
		return errors.Wrap(err, "error during GetSales")
	}
	return errors.WithStack(ctx.JSON(getSalesResponse{Result: &getSalesResult{List: sales}}))
}

type addSaleRequest struct {
	LotNumber    string            `json:"lotNumber"`
	BidderNumber string            `json:"bidderNumber"`
	BuyerName    string            `json:"buyerName"`
	SellerId     string            `json:"sellerId"`
	Title        string            `json:"title"`
	Category     string            `json:"category"`
	ImageURL     string            `json:"imageUrl"`
	Price        *settlement.Money `json:"price"`
}

func (r addSaleRequest) Validate() error {
	var errList []error
	if r.Price == nil {
		errList = append(errList, errors.New("'price' is required"))
	}
	return validationError(errList)
}

type saleResponse = common.HttpResponse[entity.Sale]

func (h *HttpHandler) AddSale(ctx *fiber.Ctx) (err error) {
	var params eventIdRequest
	if err := ctx.ParamsParser(&params); err != nil {
		return errors.WithStack(err)
	}
	var req addSaleRequest
	if err := parseBody(ctx, &req); err != nil {
		return errors.WithStack(err)
	}
	if err := req.Validate(); err != nil {
		return errors.WithStack(err)
	}

	sale, err := h.usecase.AddSale(ctx.UserContext(), params.Id, usecase.SaleParams{
		LotNumber:    req.LotNumber,
		BidderNumber: req.BidderNumber,
		BuyerName:    req.BuyerName,
		SellerID:     req.SellerId,
		Title:        req.Title,
		Category:     req.Category,
		ImageURL:     req.ImageURL,
		Price:        *req.Price,
	})
	if err != nil {
		return errors.Wrap(err, "error during AddSale")
	}
	return errors.WithStack(ctx.Status(fiber.StatusCreated).JSON(saleResponse{Result: sale}))
}

type saleIdRequest struct {
	Id     string `params:"id"`
	SaleId string `params:"saleId"`
}

func (h *HttpHandler) DeleteSale(ctx *fiber.Ctx) (err error) {
	var req saleIdRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.usecase.DeleteSale(ctx.UserContext(), req.Id, req.SaleId); err != nil {
		return errors.Wrap(err, "error during DeleteSale")
	}
	return errors.WithStack(ctx.SendStatus(fiber.StatusNoContent))
}

type getSaleSettlementResponse = common.HttpResponse[settlement.LineSettlement]

func (h *HttpHandler) GetSaleSettlement(ctx *fiber.Ctx) (err error) {
	var req saleIdRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}

	line, err := h.usecase.SettleSale(ctx.UserContext(), req.Id, req.SaleId)
	if err != nil {
		return errors.Wrap(err, "error during SettleSale")
	}
	return errors.WithStack(ctx.JSON(getSaleSettlementResponse{Result: line}))
}

type getEventSettlementResponse = common.HttpResponse[settlement.EventSettlement]

func (h *HttpHandler) GetEventSettlement(ctx *fiber.Ctx) (err error) {
	var req eventIdRequest
	if err := ctx.ParamsParser(&req); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.usecase.GetEventSettlement(ctx.UserContext(), req.Id)
	if err != nil {
		return errors.Wrap(err, "error during GetEventSettlement")
	}
	return errors.WithStack(ctx.JSON(getEventSettlementResponse{Result: result}))
}
