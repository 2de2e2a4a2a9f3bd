package entity

import (
	"time"

	"github.com/gaze-network/auction-network/modules/auction/settlement"
)

type EventStats struct {
	ItemCount   int              `json:"itemCount"`
	TotalSales  settlement.Money `json:"totalSales"`
	SellerCount int              `json:"sellerCount"`
}

type EventDetails struct {
	Event
	Stats EventStats `json:"stats"`
}

type CategorySales struct {
	Category string           `json:"category"`
	Count    int              `json:"count"`
	Revenue  settlement.Money `json:"revenue"`
}

type EventReport struct {
	Event           Event                      `json:"event"`
	Settlement      settlement.EventSettlement `json:"settlement"`
	TotalItems      int                        `json:"totalItems"`
	ItemsSold       int                        `json:"itemsSold"`
	AveragePrice    settlement.Money           `json:"averagePrice"`
	TopSale         *Sale                      `json:"topSale,omitempty"`
	SellerCount     int                        `json:"sellerCount"`
	SalesByCategory []CategorySales            `json:"salesByCategory"`
	TopSales        []Sale                     `json:"topSales"`
}

type DashboardSummary struct {
	TotalRevenue      settlement.Money `json:"totalRevenue"`
	ActiveEvents      int              `json:"activeEvents"`
	TotalSales        int              `json:"totalSales"`
	ActiveSellers     int              `json:"activeSellers"`
	ClosedEventsCount int              `json:"closedEventsCount"`
}

// Purchase is one settled line item in a buyer's purchase history.
type Purchase struct {
	EventID      string           `json:"eventId"`
	EventName    string           `json:"eventName"`
	EventDate    time.Time        `json:"eventDate"`
	SaleID       string           `json:"saleId"`
	LotNumber    string           `json:"lotNumber"`
	Title        string           `json:"title"`
	Price        settlement.Money `json:"price"`
	BuyerPremium settlement.Money `json:"buyerPremium"`
	Tax          settlement.Money `json:"tax"`
	Total        settlement.Money `json:"total"`
}
