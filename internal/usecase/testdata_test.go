package usecase

import (
	"testing"

	"ticket-service/internal/data/entity"

	"github.com/stretchr/testify/require"
)

func ticket(t *testing.T, ticketType entity.TicketType, n int) entity.TicketTypeRequest {
	t.Helper()
	req, err := entity.NewTicketTypeRequest(ticketType, n)
	require.NoError(t, err)
	return req
}

func adults(t *testing.T, n int) entity.TicketTypeRequest {
	return ticket(t, entity.TicketTypeAdult, n)
}

func children(t *testing.T, n int) entity.TicketTypeRequest {
	return ticket(t, entity.TicketTypeChild, n)
}

func infants(t *testing.T, n int) entity.TicketTypeRequest {
	return ticket(t, entity.TicketTypeInfant, n)
}

func batch(reqs ...entity.TicketTypeRequest) []entity.TicketTypeRequest {
	return reqs
}
