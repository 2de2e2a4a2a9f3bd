package datagateway

import (
	"context"
	"time"

	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
)

type AuctionDataGateway interface {
	EventDataGateway
	ParticipantDataGateway
	SaleDataGateway
	InvoiceDataGateway
	SettingsDataGateway

	// BeginAuctionTx returns a new AuctionDataGateway with transaction enabled. All write operations performed in this datagateway must be committed to persist changes.
	BeginAuctionTx(ctx context.Context) (AuctionDataGatewayWithTx, error)
}

type AuctionDataGatewayWithTx interface {
	AuctionDataGateway
	Tx
}

type EventDataGateway interface {
	// GetEvent returns errs.NotFound if the event does not exist.
	GetEvent(ctx context.Context, id string) (*entity.Event, error)
	// ListEvents returns events ordered by start date, newest first. An empty status lists every event.
	ListEvents(ctx context.Context, status entity.EventStatus) ([]*entity.Event, error)
	CreateEvent(ctx context.Context, event *entity.Event) error
	// UpdateEvent replaces the editable fields of an event. The status is left untouched.
	UpdateEvent(ctx context.Context, event *entity.Event) error
	UpdateEventStatus(ctx context.Context, id string, status entity.EventStatus, updatedAt time.Time) error
	DeleteEvent(ctx context.Context, id string) error
}

type ParticipantDataGateway interface {
	GetParticipant(ctx context.Context, id string) (*entity.Participant, error)
	// ListParticipants returns participants ordered by name. An empty role lists every participant.
	ListParticipants(ctx context.Context, role entity.ParticipantRole) ([]*entity.Participant, error)
	CreateParticipant(ctx context.Context, participant *entity.Participant) error
	UpdateParticipant(ctx context.Context, participant *entity.Participant) error

	// GetEnrollment returns errs.NotFound if the participant never enrolled in the event.
	GetEnrollment(ctx context.Context, eventID, participantID string) (*entity.Enrollment, error)
	// GetEnrollmentByPaddle returns errs.NotFound if no enrollment of the event holds the paddle number.
	GetEnrollmentByPaddle(ctx context.Context, eventID, paddleNumber string) (*entity.Enrollment, error)
	ListEnrollmentsByEvent(ctx context.Context, eventID string) ([]*entity.Enrollment, error)
	ListEnrollmentsByParticipant(ctx context.Context, participantID string) ([]*entity.Enrollment, error)
	// UpsertEnrollment creates or replaces the enrollment. A paddle number already held by another
	// participant of the same event returns errs.Conflict.
	UpsertEnrollment(ctx context.Context, enrollment *entity.Enrollment) error
	ListPaddleNumbers(ctx context.Context, eventID string) ([]string, error)
}

type SaleDataGateway interface {
	// GetSales returns the sales of an event ordered by lot number.
	GetSales(ctx context.Context, eventID string) ([]*entity.Sale, error)
	GetSale(ctx context.Context, id string) (*entity.Sale, error)
	ListSalesByBuyer(ctx context.Context, buyerID string) ([]*entity.Sale, error)
	// AddSale returns errs.Conflict if the lot number is already used in the event.
	AddSale(ctx context.Context, sale *entity.Sale) error
	DeleteSale(ctx context.Context, id string) error
	MarkSalesInvoiced(ctx context.Context, eventID string, invoicedAt time.Time) error
}

type InvoiceFilter struct {
	EventID  string
	SellerID string
}

type StatementFilter struct {
	EventID string
	BuyerID string
}

type InvoiceDataGateway interface {
	CreateSellerInvoices(ctx context.Context, invoices []*entity.SellerInvoice) error
	GetSellerInvoice(ctx context.Context, id string) (*entity.SellerInvoice, error)
	// ListSellerInvoices returns invoices matching every non-empty field of filter.
	ListSellerInvoices(ctx context.Context, filter InvoiceFilter) ([]*entity.SellerInvoice, error)
	UpdateInvoiceStatus(ctx context.Context, id string, status entity.InvoiceStatus, paidAt *time.Time) error

	CreateBuyerStatements(ctx context.Context, statements []*entity.BuyerStatement) error
	GetBuyerStatement(ctx context.Context, id string) (*entity.BuyerStatement, error)
	// ListBuyerStatements returns statements matching every non-empty field of filter.
	ListBuyerStatements(ctx context.Context, filter StatementFilter) ([]*entity.BuyerStatement, error)
	UpdateStatementStatus(ctx context.Context, id string, status entity.StatementStatus, paidAt *time.Time) error
}

type SettingsDataGateway interface {
	// GetSettings returns errs.NotFound until the settings are saved for the first time.
	GetSettings(ctx context.Context) (*entity.MarketplaceSettings, error)
	UpsertSettings(ctx context.Context, settings *entity.MarketplaceSettings) error
}
