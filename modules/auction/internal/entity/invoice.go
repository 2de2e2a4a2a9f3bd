package entity

import (
	"time"

	"github.com/gaze-network/auction-network/modules/auction/settlement"
)

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "Pending"
	InvoiceStatusPaid    InvoiceStatus = "Paid"
)

type StatementStatus string

const (
	StatementStatusUnpaid StatementStatus = "unpaid"
	StatementStatusPaid   StatementStatus = "paid"
)

// SellerInvoice is what the marketplace owes a seller after an event is posted.
type SellerInvoice struct {
	ID         string           `json:"id"`
	EventID    string           `json:"eventId"`
	EventName  string           `json:"eventName"`
	SellerID   string           `json:"sellerId"`
	LotsSold   int              `json:"lotsSold"`
	SalePrice  settlement.Money `json:"salePrice"`
	Commission settlement.Money `json:"commission"`
	SalesTax   settlement.Money `json:"salesTax"`
	TotalDue   settlement.Money `json:"totalDue"`
	Status     InvoiceStatus    `json:"status"`
	IssuedAt   time.Time        `json:"issuedAt"`
	PaidAt     *time.Time       `json:"paidAt,omitempty"`
}

// BuyerStatement is what a buyer owes the marketplace after an event is posted.
type BuyerStatement struct {
	ID           string           `json:"id"`
	EventID      string           `json:"eventId"`
	EventName    string           `json:"eventName"`
	BidderNumber string           `json:"bidderNumber"`
	BuyerID      string           `json:"buyerId,omitempty"`
	BuyerName    string           `json:"buyerName"`
	Lots         int              `json:"lots"`
	Price        settlement.Money `json:"price"`
	Premium      settlement.Money `json:"premium"`
	Tax          settlement.Money `json:"tax"`
	Total        settlement.Money `json:"total"`
	Status       StatementStatus  `json:"status"`
	IssuedAt     time.Time        `json:"issuedAt"`
	PaidAt       *time.Time       `json:"paidAt,omitempty"`
}

// PostedDocuments are the documents generated when an event is posted.
type PostedDocuments struct {
	Event      Event            `json:"event"`
	Invoices   []SellerInvoice  `json:"invoices"`
	Statements []BuyerStatement `json:"statements"`
}
