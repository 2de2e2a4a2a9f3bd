package postgres

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
	"github.com/gaze-network/auction-network/modules/auction/repository/postgres/gen"
	"github.com/gaze-network/auction-network/modules/auction/settlement"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

func decimalFromNumeric(src pgtype.Numeric) (decimal.Decimal, error) {
	if !src.Valid {
		return decimal.Zero, nil
	}
	if src.NaN || src.InfinityModifier != pgtype.Finite {
		return decimal.Zero, errors.New("numeric is not a finite number")
	}
	if src.Int == nil {
		return decimal.Zero, nil
	}
	return decimal.NewFromBigInt(src.Int, src.Exp), nil
}

func numericFromDecimal(src decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{
		Int:   src.Coefficient(),
		Exp:   src.Exponent(),
		Valid: true,
	}
}

func ratesFromNumerics(commission, tax, premium pgtype.Numeric) (settlement.Rates, error) {
	commissionRate, err := decimalFromNumeric(commission)
	if err != nil {
		return settlement.Rates{}, errors.Wrap(err, "failed to parse commission rate")
	}
	taxRate, err := decimalFromNumeric(tax)
	if err != nil {
		return settlement.Rates{}, errors.Wrap(err, "failed to parse tax rate")
	}
	buyersPremium, err := decimalFromNumeric(premium)
	if err != nil {
		return settlement.Rates{}, errors.Wrap(err, "failed to parse buyers premium")
	}
	return settlement.Rates{
		CommissionRate: commissionRate,
		TaxRate:        taxRate,
		BuyersPremium:  buyersPremium,
	}, nil
}

func timeFromTimestamptz(src pgtype.Timestamptz) time.Time {
	if !src.Valid {
		return time.Time{}
	}
	return src.Time.UTC()
}

func timePtrFromTimestamptz(src pgtype.Timestamptz) *time.Time {
	if !src.Valid {
		return nil
	}
	return lo.ToPtr(src.Time.UTC())
}

func timestamptzFromTime(src time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: src, Valid: !src.IsZero()}
}

func timestamptzFromTimePtr(src *time.Time) pgtype.Timestamptz {
	if src == nil {
		return pgtype.Timestamptz{}
	}
	return timestamptzFromTime(*src)
}

func timeFromDate(src pgtype.Date) time.Time {
	if !src.Valid {
		return time.Time{}
	}
	return time.Date(src.Time.Year(), src.Time.Month(), src.Time.Day(), 0, 0, 0, 0, time.UTC)
}

func dateFromTime(src time.Time) pgtype.Date {
	return pgtype.Date{Time: src, Valid: !src.IsZero()}
}

func textFromString(src string) pgtype.Text {
	return pgtype.Text{String: src, Valid: src != ""}
}

func mapEventModelToType(src gen.AuctionEvent) (entity.Event, error) {
	rates, err := ratesFromNumerics(src.CommissionRate, src.TaxRate, src.BuyersPremium)
	if err != nil {
		return entity.Event{}, errors.Wrapf(err, "event %s", src.ID)
	}
	return entity.Event{
		ID:          src.ID,
		Name:        src.Name,
		Description: src.Description,
		Location:    src.Location,
		StartDate:   timeFromDate(src.StartDate),
		EndDate:     timeFromDate(src.EndDate),
		Time:        src.Time,
		Status:      entity.EventStatus(src.Status),
		Rates:       rates,
		CreatedAt:   timeFromTimestamptz(src.CreatedAt),
		UpdatedAt:   timeFromTimestamptz(src.UpdatedAt),
	}, nil
}

func mapEventTypeToParams(src entity.Event) gen.CreateEventParams {
	return gen.CreateEventParams{
		ID:             src.ID,
		Name:           src.Name,
		Description:    src.Description,
		Location:       src.Location,
		StartDate:      dateFromTime(src.StartDate),
		EndDate:        dateFromTime(src.EndDate),
		Time:           src.Time,
		Status:         src.Status.String(),
		CommissionRate: numericFromDecimal(src.Rates.CommissionRate),
		TaxRate:        numericFromDecimal(src.Rates.TaxRate),
		BuyersPremium:  numericFromDecimal(src.Rates.BuyersPremium),
		CreatedAt:      timestamptzFromTime(src.CreatedAt),
		UpdatedAt:      timestamptzFromTime(src.UpdatedAt),
	}
}

func mapParticipantModelToType(src gen.AuctionParticipant) entity.Participant {
	return entity.Participant{
		ID:        src.ID,
		Name:      src.Name,
		Nickname:  src.Nickname,
		Email:     src.Email,
		Phone:     src.Phone,
		Role:      entity.ParticipantRole(src.Role),
		CreatedAt: timeFromTimestamptz(src.CreatedAt),
		UpdatedAt: timeFromTimestamptz(src.UpdatedAt),
	}
}

func mapEnrollmentModelToType(src gen.AuctionEnrollment) entity.Enrollment {
	return entity.Enrollment{
		EventID:       src.EventID,
		ParticipantID: src.ParticipantID,
		Status:        entity.EnrollmentStatus(src.Status),
		PaddleNumber:  src.PaddleNumber.String,
		CreatedAt:     timeFromTimestamptz(src.CreatedAt),
		UpdatedAt:     timeFromTimestamptz(src.UpdatedAt),
	}
}

func mapSaleModelToType(src gen.AuctionSale) entity.Sale {
	return entity.Sale{
		ID:           src.ID,
		EventID:      src.EventID,
		LotNumber:    src.LotNumber,
		BidderNumber: src.BidderNumber,
		BuyerID:      src.BuyerID.String,
		BuyerName:    src.BuyerName,
		SellerID:     src.SellerID,
		Title:        src.Title,
		Category:     src.Category,
		ImageURL:     src.ImageUrl,
		Price:        settlement.Money(src.Price),
		CreatedAt:    timeFromTimestamptz(src.CreatedAt),
		InvoicedAt:   timePtrFromTimestamptz(src.InvoicedAt),
	}
}

func mapSaleTypeToParams(src entity.Sale) gen.AddSaleParams {
	return gen.AddSaleParams{
		ID:           src.ID,
		EventID:      src.EventID,
		LotNumber:    src.LotNumber,
		BidderNumber: src.BidderNumber,
		BuyerID:      textFromString(src.BuyerID),
		BuyerName:    src.BuyerName,
		SellerID:     src.SellerID,
		Title:        src.Title,
		Category:     src.Category,
		ImageUrl:     src.ImageURL,
		Price:        int64(src.Price),
		CreatedAt:    timestamptzFromTime(src.CreatedAt),
		InvoicedAt:   timestamptzFromTimePtr(src.InvoicedAt),
	}
}

// GetSellerInvoiceRow and ListSellerInvoicesRow share a layout.
func mapSellerInvoiceRowToType(src gen.GetSellerInvoiceRow) entity.SellerInvoice {
	return entity.SellerInvoice{
		ID:         src.ID,
		EventID:    src.EventID,
		EventName:  src.EventName,
		SellerID:   src.SellerID,
		LotsSold:   int(src.LotsSold),
		SalePrice:  settlement.Money(src.SalePrice),
		Commission: settlement.Money(src.Commission),
		SalesTax:   settlement.Money(src.SalesTax),
		TotalDue:   settlement.Money(src.TotalDue),
		Status:     entity.InvoiceStatus(src.Status),
		IssuedAt:   timeFromTimestamptz(src.IssuedAt),
		PaidAt:     timePtrFromTimestamptz(src.PaidAt),
	}
}

func mapSellerInvoicesTypeToParams(src []*entity.SellerInvoice) gen.BatchCreateSellerInvoicesParams {
	params := gen.BatchCreateSellerInvoicesParams{
		IDArr:         make([]string, 0, len(src)),
		EventIDArr:    make([]string, 0, len(src)),
		SellerIDArr:   make([]string, 0, len(src)),
		LotsSoldArr:   make([]int32, 0, len(src)),
		SalePriceArr:  make([]int64, 0, len(src)),
		CommissionArr: make([]int64, 0, len(src)),
		SalesTaxArr:   make([]int64, 0, len(src)),
		TotalDueArr:   make([]int64, 0, len(src)),
		StatusArr:     make([]string, 0, len(src)),
		IssuedAtArr:   make([]pgtype.Timestamptz, 0, len(src)),
	}
	for _, invoice := range src {
		params.IDArr = append(params.IDArr, invoice.ID)
		params.EventIDArr = append(params.EventIDArr, invoice.EventID)
		params.SellerIDArr = append(params.SellerIDArr, invoice.SellerID)
		params.LotsSoldArr = append(params.LotsSoldArr, int32(invoice.LotsSold))
		params.SalePriceArr = append(params.SalePriceArr, int64(invoice.SalePrice))
		params.CommissionArr = append(params.CommissionArr, int64(invoice.Commission))
		params.SalesTaxArr = append(params.SalesTaxArr, int64(invoice.SalesTax))
		params.TotalDueArr = append(params.TotalDueArr, int64(invoice.TotalDue))
		params.StatusArr = append(params.StatusArr, string(invoice.Status))
		params.IssuedAtArr = append(params.IssuedAtArr, timestamptzFromTime(invoice.IssuedAt))
	}
	return params
}

func mapBuyerStatementRowToType(src gen.GetBuyerStatementRow) entity.BuyerStatement {
	return entity.BuyerStatement{
		ID:           src.ID,
		EventID:      src.EventID,
		EventName:    src.EventName,
		BidderNumber: src.BidderNumber,
		BuyerID:      src.BuyerID.String,
		BuyerName:    src.BuyerName,
		Lots:         int(src.Lots),
		Price:        settlement.Money(src.Price),
		Premium:      settlement.Money(src.Premium),
		Tax:          settlement.Money(src.Tax),
		Total:        settlement.Money(src.Total),
		Status:       entity.StatementStatus(src.Status),
		IssuedAt:     timeFromTimestamptz(src.IssuedAt),
		PaidAt:       timePtrFromTimestamptz(src.PaidAt),
	}
}

func mapBuyerStatementsTypeToParams(src []*entity.BuyerStatement) gen.BatchCreateBuyerStatementsParams {
	params := gen.BatchCreateBuyerStatementsParams{
		IDArr:           make([]string, 0, len(src)),
		EventIDArr:      make([]string, 0, len(src)),
		BidderNumberArr: make([]string, 0, len(src)),
		BuyerIDArr:      make([]string, 0, len(src)),
		BuyerNameArr:    make([]string, 0, len(src)),
		LotsArr:         make([]int32, 0, len(src)),
		PriceArr:        make([]int64, 0, len(src)),
		PremiumArr:      make([]int64, 0, len(src)),
		TaxArr:          make([]int64, 0, len(src)),
		TotalArr:        make([]int64, 0, len(src)),
		StatusArr:       make([]string, 0, len(src)),
		IssuedAtArr:     make([]pgtype.Timestamptz, 0, len(src)),
	}
	for _, statement := range src {
		params.IDArr = append(params.IDArr, statement.ID)
		params.EventIDArr = append(params.EventIDArr, statement.EventID)
		params.BidderNumberArr = append(params.BidderNumberArr, statement.BidderNumber)
		params.BuyerIDArr = append(params.BuyerIDArr, statement.BuyerID) // empty is stored as NULL
		params.BuyerNameArr = append(params.BuyerNameArr, statement.BuyerName)
		params.LotsArr = append(params.LotsArr, int32(statement.Lots))
		params.PriceArr = append(params.PriceArr, int64(statement.Price))
		params.PremiumArr = append(params.PremiumArr, int64(statement.Premium))
		params.TaxArr = append(params.TaxArr, int64(statement.Tax))
		params.TotalArr = append(params.TotalArr, int64(statement.Total))
		params.StatusArr = append(params.StatusArr, string(statement.Status))
		params.IssuedAtArr = append(params.IssuedAtArr, timestamptzFromTime(statement.IssuedAt))
	}
	return params
}

func mapSettingsModelToType(src gen.AuctionSetting) (entity.MarketplaceSettings, error) {
	rates, err := ratesFromNumerics(src.CommissionRate, src.TaxRate, src.BuyersPremium)
	if err != nil {
		return entity.MarketplaceSettings{}, errors.WithStack(err)
	}
	return entity.MarketplaceSettings{
		BusinessName: src.BusinessName,
		Email:        src.Email,
		Phone:        src.Phone,
		Website:      src.Website,
		Address:      src.Address,
		City:         src.City,
		State:        src.State,
		Zip:          src.Zip,
		LogoURL:      src.LogoUrl,
		DefaultRates: rates,
		UpdatedAt:    timeFromTimestamptz(src.UpdatedAt),
	}, nil
}

func mapSettingsTypeToParams(src entity.MarketplaceSettings) gen.UpsertSettingsParams {
	return gen.UpsertSettingsParams{
		BusinessName:   src.BusinessName,
		Email:          src.Email,
		Phone:          src.Phone,
		Website:        src.Website,
		Address:        src.Address,
		City:           src.City,
		State:          src.State,
		Zip:            src.Zip,
		LogoUrl:        src.LogoURL,
		CommissionRate: numericFromDecimal(src.DefaultRates.CommissionRate),
		TaxRate:        numericFromDecimal(src.DefaultRates.TaxRate),
		BuyersPremium:  numericFromDecimal(src.DefaultRates.BuyersPremium),
		UpdatedAt:      timestamptzFromTime(src.UpdatedAt),
	}
}
