package usecase

import "ticket-service/internal/data/entity"

// TicketPrices maps each ticket type to its unit price
type TicketPrices map[entity.TicketType]int

func DefaultTicketPrices() TicketPrices {
	return TicketPrices{
		entity.TicketTypeAdult:  25,
		entity.TicketTypeChild:  15,
		entity.TicketTypeInfant: 0,
	}
}

// CountTickets sums every quantity regardless of type
func CountTickets(requests []entity.TicketTypeRequest) int {
	count := 0
	for _, req := range requests {
		count += req.NoOfTickets()
	}
	return count
}

// CountSeats sums quantities of every type that needs a seat. Infants sit on a lap.
func CountSeats(requests []entity.TicketTypeRequest) int {
	seats := 0
	for _, req := range requests {
		if req.TicketType() != entity.TicketTypeInfant {
			seats += req.NoOfTickets()
		}
	}
	return seats
}

func CalculatePrice(requests []entity.TicketTypeRequest, prices TicketPrices) int {
	total := 0
	for _, req := range requests {
		total += prices[req.TicketType()] * req.NoOfTickets()
	}
	return total
}

func countByType(requests []entity.TicketTypeRequest, ticketType entity.TicketType) int {
	count := 0
	for _, req := range requests {
		if req.TicketType() == ticketType {
			count += req.NoOfTickets()
		}
	}
	return count
}
