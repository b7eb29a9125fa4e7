package request

// PurchaseTicketsRequest keeps account_id and quantity loosely typed so that the
// purchase rules, not the JSON decoder, decide what an invalid value means
type PurchaseTicketsRequest struct {
	AccountID any                 `json:"account_id"`
	Tickets   []TicketTypeRequest `json:"tickets" validate:"required,min=1,dive"`
}

type TicketTypeRequest struct {
	Type     string `json:"type" validate:"required"`
	Quantity any    `json:"quantity"`
}
