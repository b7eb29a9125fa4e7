package response

import "ticket-service/internal/data/entity"

type TicketPriceResponse struct {
	Type       entity.TicketType `json:"type"`
	Price      int               `json:"price"`
	NeedsSeat  bool              `json:"needs_seat"`
	NeedsAdult bool              `json:"needs_adult"`
}

type TicketPricesResponse struct {
	Prices               []TicketPriceResponse `json:"prices"`
	MaxTicketsPerBooking int                   `json:"max_tickets_per_booking"`
}
