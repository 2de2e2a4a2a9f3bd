package httphandler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gaze-network/auction-network/common"
	"github.com/gaze-network/auction-network/modules/auction/internal/entity"
	"github.com/gaze-network/auction-network/modules/auction/repository/memory"
	"github.com/gaze-network/auction-network/modules/auction/settlement"
	"github.com/gaze-network/auction-network/modules/auction/usecase"
	"github.com/gaze-network/auction-network/pkg/errorhandler"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	t   *testing.T
	app *fiber.App
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	app := fiber.New(fiber.Config{
		ErrorHandler: errorhandler.NewHTTPErrorHandler(),
	})
	h := New(usecase.New(memory.NewRepository(), settlement.Policy{}))
	require.NoError(t, h.Mount(app))
	return &testServer{t: t, app: app}
}

func (s *testServer) do(method, path string, body any) *http.Response {
	s.t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, "/auction/v1"+path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(s.t, err)
	return resp
}

// call performs the request, checks the status and decodes the result.
func call[T any](s *testServer, method, path string, body any, status int) *T {
	s.t.Helper()
	resp := s.do(method, path, body)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(s.t, err)
	require.Equal(s.t, status, resp.StatusCode, string(data))

	var decoded common.HttpResponse[T]
	if len(data) > 0 {
		require.NoError(s.t, json.Unmarshal(data, &decoded), string(data))
	}
	return decoded.Result
}

func TestAuctionFlow(t *testing.T) {
	s := newTestServer(t)

	seller := call[entity.Participant](s, http.MethodPost, "/participants", map[string]any{
		"name": "Sam Seller", "email": "sam@example.com", "role": "seller",
	}, http.StatusCreated)
	buyer := call[entity.Participant](s, http.MethodPost, "/participants", map[string]any{
		"name": "Bea Buyer", "email": "bea@example.com", "role": "buyer",
	}, http.StatusCreated)

	created := call[event](s, http.MethodPost, "/events", map[string]any{
		"name":      "Spring Estate Sale",
		"location":  "Main Hall",
		"startDate": "2026-05-01",
		"rates":     map[string]any{"commissionRate": "10", "taxRate": "8", "buyersPremium": "15"},
	}, http.StatusCreated)
	require.NotNil(t, created)
	assert.Equal(t, entity.EventStatusDraft, created.Status)
	assert.Equal(t, "2026-05-01", created.StartDate)
	eventPath := "/events/" + created.Id

	invited := call[entity.Enrollment](s, http.MethodPost, eventPath+"/enrollments/"+buyer.ID+"/invite", map[string]any{
		"paddleNumber": "101",
	}, http.StatusOK)
	assert.Equal(t, entity.EnrollmentStatusInvited, invited.Status)
	approved := call[entity.Enrollment](s, http.MethodPost, eventPath+"/enrollments/"+buyer.ID+"/respond", map[string]any{
		"accept": true,
	}, http.StatusOK)
	assert.Equal(t, entity.EnrollmentStatusApproved, approved.Status)
	assert.Equal(t, "101", approved.PaddleNumber)

	live := call[event](s, http.MethodPost, eventPath+"/start", nil, http.StatusOK)
	assert.Equal(t, entity.EventStatusLive, live.Status)

	sale := call[entity.Sale](s, http.MethodPost, eventPath+"/sales", map[string]any{
		"lotNumber": "1", "bidderNumber": "101", "sellerId": seller.ID, "title": "Oak armoire", "price": "500.00",
	}, http.StatusCreated)
	assert.Equal(t, buyer.ID, sale.BuyerID)
	call[entity.Sale](s, http.MethodPost, eventPath+"/sales", map[string]any{
		"lotNumber": "1", "bidderNumber": "101", "sellerId": seller.ID, "title": "Duplicate", "price": "1",
	}, http.StatusConflict)

	line := call[settlement.LineSettlement](s, http.MethodGet, eventPath+"/sales/"+sale.ID+"/settlement", nil, http.StatusOK)
	assert.Equal(t, "615.00", line.Total.String())
	assert.Equal(t, "450.00", line.Payout.String())

	call[postedDocuments](s, http.MethodPost, eventPath+"/post", nil, http.StatusConflict)
	call[event](s, http.MethodPost, eventPath+"/end", nil, http.StatusOK)
	posted := call[postedDocuments](s, http.MethodPost, eventPath+"/post", nil, http.StatusOK)
	assert.Equal(t, entity.EventStatusClosed, posted.Event.Status)
	require.Len(t, posted.Invoices, 1)
	assert.Equal(t, "450.00", posted.Invoices[0].TotalDue.String())
	require.Len(t, posted.Statements, 1)
	assert.Equal(t, "615.00", posted.Statements[0].Total.String())

	paid := call[entity.SellerInvoice](s, http.MethodPost, "/invoices/"+posted.Invoices[0].ID+"/paid", nil, http.StatusOK)
	assert.Equal(t, entity.InvoiceStatusPaid, paid.Status)

	purchases := call[getBuyerPurchasesResult](s, http.MethodGet, "/participants/"+buyer.ID+"/purchases", nil, http.StatusOK)
	require.Len(t, purchases.List, 1)
	assert.Equal(t, "Spring Estate Sale", purchases.List[0].EventName)

	details := call[eventDetails](s, http.MethodGet, eventPath, nil, http.StatusOK)
	assert.Equal(t, 1, details.Stats.ItemCount)
	assert.Equal(t, "500.00", details.Stats.TotalSales.String())

	summary := call[entity.DashboardSummary](s, http.MethodGet, "/dashboard", nil, http.StatusOK)
	assert.Equal(t, "500.00", summary.TotalRevenue.String())
	assert.Equal(t, 1, summary.TotalSales)
	assert.Equal(t, 1, summary.ClosedEventsCount)
}

func TestErrorResponses(t *testing.T) {
	s := newTestServer(t)

	call[event](s, http.MethodGet, "/events/missing", nil, http.StatusNotFound)
	call[event](s, http.MethodPost, "/events", map[string]any{
		"name": "Spring Estate Sale", "location": "Main Hall", "startDate": "May 1st",
	}, http.StatusUnprocessableEntity)
	call[event](s, http.MethodPost, "/events", map[string]any{
		"name": "Sale", "location": "Main Hall", "startDate": "2026-05-01",
	}, http.StatusUnprocessableEntity)
	call[listEventsResult](s, http.MethodGet, "/events?status=archived", nil, http.StatusUnprocessableEntity)
	call[entity.Participant](s, http.MethodPost, "/participants", map[string]any{
		"name": "Sam", "email": "not-an-email", "role": "seller",
	}, http.StatusUnprocessableEntity)
	call[entity.MarketplaceSettings](s, http.MethodPut, "/settings", map[string]any{
		"businessName": "A",
	}, http.StatusUnprocessableEntity)

	created := call[event](s, http.MethodPost, "/events", map[string]any{
		"name": "Spring Estate Sale", "location": "Main Hall", "startDate": "2026-05-01",
	}, http.StatusCreated)
	call[entity.Sale](s, http.MethodPost, "/events/"+created.Id+"/sales", map[string]any{
		"lotNumber": "1", "bidderNumber": "101", "sellerId": "x", "title": "Chair", "price": "1.005",
	}, http.StatusUnprocessableEntity)
	call[entity.Enrollment](s, http.MethodPost, "/events/"+created.Id+"/enrollments/p1/withdraw", nil, http.StatusNotFound)

	resp := s.do(http.MethodGet, "/events/"+created.Id+"/export?format=xml", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSettingsDefaults(t *testing.T) {
	s := newTestServer(t)

	settings := call[settingsResult](s, http.MethodGet, "/settings", nil, http.StatusOK)
	assert.Equal(t, "8.25", settings.DefaultRates.TaxRate.String())
	assert.False(t, settings.Policy.TaxOnPremium)

	updated := call[entity.MarketplaceSettings](s, http.MethodPut, "/settings", map[string]any{
		"businessName": "Acme Auctions",
		"email":        "office@acme.example",
		"phone":        "(555) 123-4567",
		"zip":          "78701",
		"defaultRates": map[string]any{"commissionRate": 12, "taxRate": 6.25, "buyersPremium": 10},
	}, http.StatusOK)
	assert.Equal(t, "Acme Auctions", updated.BusinessName)

	created := call[event](s, http.MethodPost, "/events", map[string]any{
		"name": "Spring Estate Sale", "location": "Main Hall", "startDate": "2026-05-01",
	}, http.StatusCreated)
	assert.Equal(t, "12", created.Rates.CommissionRate.String())
}

func TestExportEventSales(t *testing.T) {
	s := newTestServer(t)
	seller := call[entity.Participant](s, http.MethodPost, "/participants", map[string]any{
		"name": "Sam Seller", "email": "sam@example.com", "role": "cosigner",
	}, http.StatusCreated)
	created := call[event](s, http.MethodPost, "/events", map[string]any{
		"name": "Spring Estate Sale", "location": "Main Hall", "startDate": "2026-05-01",
	}, http.StatusCreated)
	call[entity.Sale](s, http.MethodPost, "/events/"+created.Id+"/sales", map[string]any{
		"lotNumber": "7", "bidderNumber": "5", "sellerId": seller.ID, "title": `12" brass lamp`, "price": 45.5,
	}, http.StatusCreated)

	resp := s.do(http.MethodGet, "/events/"+created.Id+"/export?format=csv", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `attachment; filename="event-`+created.Id+`-sales.csv"`, resp.Header.Get(fiber.HeaderContentDisposition))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"12"" brass lamp"`)
	assert.Contains(t, string(body), `"45.50"`)
}
