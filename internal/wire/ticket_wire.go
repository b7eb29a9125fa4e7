package wire

import (
	"ticket-service/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTicket(r chi.Router, ticketHandler *adaptor.TicketHandler) {
	r.Route("/api/tickets", func(r chi.Router) {
		// POST /api/tickets/purchase - validate, pay and reserve in one call
		r.Post("/purchase", ticketHandler.PurchaseTickets)

		// GET /api/tickets/prices - unit prices and the per-booking limit
		r.Get("/prices", ticketHandler.GetTicketPrices)
	})
}
