package httphandler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) Mount(router fiber.Router) error {
	r := router.Group("/auction/v1")

	r.Get("/settings", h.GetSettings)
	r.Put("/settings", h.UpdateSettings)
	r.Get("/dashboard", h.GetDashboardSummary)

	r.Get("/events", h.ListEvents)
	r.Post("/events", h.CreateEvent)
	r.Get("/events/:id", h.GetEventDetails)
	r.Put("/events/:id", h.UpdateEvent)
	r.Delete("/events/:id", h.DeleteEvent)
	for _, transition := range lifecycleTransitions {
		r.Post("/events/:id/"+string(transition), h.TransitionEvent(transition))
	}
	r.Post("/events/:id/post", h.PostEvent)
	r.Get("/events/:id/invoices", h.GetPostedDocuments)

	r.Get("/events/:id/sales", h.GetSales)
	r.Post("/events/:id/sales", h.AddSale)
	r.Delete("/events/:id/sales/:saleId", h.DeleteSale)
	r.Get("/events/:id/sales/:saleId/settlement", h.GetSaleSettlement)
	r.Get("/events/:id/settlement", h.GetEventSettlement)
	r.Get("/events/:id/report", h.GetEventReport)
	r.Get("/events/:id/export", h.ExportEventSales)

	r.Get("/events/:id/participants", h.ListEventParticipants)
	r.Get("/events/:id/enrollments/:participantId", h.GetEnrollment)
	r.Post("/events/:id/enrollments/:participantId/:transition", h.ChangeEnrollment)

	r.Get("/participants", h.ListParticipants)
	r.Post("/participants", h.CreateParticipant)
	r.Get("/participants/:id", h.GetParticipant)
	r.Put("/participants/:id", h.UpdateParticipant)
	r.Get("/participants/:id/enrollments", h.ListParticipantEnrollments)
	r.Get("/participants/:id/purchases", h.GetBuyerPurchases)
	r.Get("/participants/:id/invoices", h.ListSellerInvoices)
	r.Get("/participants/:id/statements", h.ListBuyerStatements)

	r.Post("/invoices/:id/paid", h.MarkInvoicePaid)
	r.Post("/statements/:id/paid", h.MarkStatementPaid)
	return nil
}
