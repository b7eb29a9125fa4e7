package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ticket-service/internal/usecase"
	"ticket-service/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubPayment struct {
	err   error
	calls int
}

func (s *stubPayment) MakePayment(ctx context.Context, accountID int64, amount int) error {
	s.calls++
	return s.err
}

type stubSeats struct {
	err   error
	calls int
}

func (s *stubSeats) ReserveSeat(ctx context.Context, accountID int64, seatCount int) error {
	s.calls++
	return s.err
}

func newTestTicketHandler(payment *stubPayment, seats *stubSeats) *TicketHandler {
	svc := usecase.NewTicketService(payment, seats, utils.TicketConfig{
		MaxPerBooking: 25,
		PriceAdult:    25,
		PriceChild:    15,
		PriceInfant:   0,
	}, zap.NewNop())
	return NewTicketHandler(svc, zap.NewNop())
}

func doPurchase(t *testing.T, h *TicketHandler, body string) (*httptest.ResponseRecorder, utils.Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/tickets/purchase", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.PurchaseTickets(rec, req)

	var resp utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestTicketHandler_PurchaseTickets(t *testing.T) {
	payment, seats := &stubPayment{}, &stubSeats{}
	h := newTestTicketHandler(payment, seats)

	rec, resp := doPurchase(t, h, `{"account_id": 123, "tickets": [
		{"type": "ADULT", "quantity": 1},
		{"type": "CHILD", "quantity": 2},
		{"type": "INFANT", "quantity": 1}
	]}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Status)
	assert.Equal(t, "Reservation for 4 (3 seats) at cost 55", resp.Message)
	assert.Equal(t, map[string]any{
		"status":  float64(200),
		"message": "Reservation for 4 (3 seats) at cost 55",
	}, resp.Data)
	assert.Equal(t, 1, payment.calls)
	assert.Equal(t, 1, seats.calls)
}

func TestTicketHandler_PurchaseTickets_rejected(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		message string
	}{
		{
			name:    "string account",
			body:    `{"account_id": "ONE", "tickets": [{"type": "ADULT", "quantity": 1}]}`,
			message: "Error during booking: Invalid account ID provided",
		},
		{
			name:    "null account",
			body:    `{"account_id": null, "tickets": [{"type": "ADULT", "quantity": 1}]}`,
			message: "Error during booking: Invalid account ID provided",
		},
		{
			name:    "missing account and no adult",
			body:    `{"tickets": [{"type": "CHILD", "quantity": 1}]}`,
			message: "Error during booking: Request did not contain the required number of adults",
		},
		{
			name:    "over limit",
			body:    `{"account_id": 123e5, "tickets": [{"type": "ADULT", "quantity": 25}, {"type": "INFANT", "quantity": 1}]}`,
			message: "Error during booking: Booking cannot exceed the maximum limit of 25",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			payment, seats := &stubPayment{}, &stubSeats{}
			h := newTestTicketHandler(payment, seats)

			rec, resp := doPurchase(t, h, tc.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, resp.Status)
			assert.Equal(t, tc.message, resp.Message)
			assert.Zero(t, payment.calls)
			assert.Zero(t, seats.calls)
		})
	}
}

func TestTicketHandler_PurchaseTickets_malformedInput(t *testing.T) {
	h := newTestTicketHandler(&stubPayment{}, &stubSeats{})

	t.Run("not json", func(t *testing.T) {
		rec, resp := doPurchase(t, h, `{`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request body", resp.Message)
	})

	t.Run("no tickets", func(t *testing.T) {
		rec, resp := doPurchase(t, h, `{"account_id": 1, "tickets": []}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Validation failed", resp.Message)
		assert.Equal(t, map[string]any{"Tickets": "Must contain at least 1 item(s)"}, resp.Errors)
	})

	t.Run("bad lines", func(t *testing.T) {
		rec, resp := doPurchase(t, h, `{"account_id": 1, "tickets": [
			{"type": "ADULT", "quantity": 1},
			{"type": "adult", "quantity": 1},
			{"type": "CHILD", "quantity": 1.1},
			{"type": "INFANT", "quantity": "123"}
		]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid ticket request", resp.Message)

		errs, ok := resp.Errors.(map[string]any)
		require.True(t, ok)
		assert.Len(t, errs, 3)
		assert.Contains(t, errs["Tickets[1]"], "type must be ADULT, CHILD, or INFANT")
		assert.Contains(t, errs["Tickets[2]"], "noOfTickets must be an integer")
		assert.Contains(t, errs["Tickets[3]"], "noOfTickets must be an integer")
	})
}

func TestTicketHandler_PurchaseTickets_downstreamFailure(t *testing.T) {
	payment, seats := &stubPayment{}, &stubSeats{err: errors.New("venue offline")}
	h := newTestTicketHandler(payment, seats)

	rec, resp := doPurchase(t, h, `{"account_id": 5, "tickets": [{"type": "ADULT", "quantity": 2}]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Error during booking: finalise booking error: seat booking failure: venue offline", resp.Message)
	assert.Equal(t, 1, payment.calls)
	assert.Equal(t, 1, seats.calls)
}

func TestTicketHandler_GetTicketPrices(t *testing.T) {
	h := newTestTicketHandler(&stubPayment{}, &stubSeats{})

	rec := httptest.NewRecorder()
	h.GetTicketPrices(rec, httptest.NewRequest(http.MethodGet, "/api/tickets/prices", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Prices []struct {
				Type  string `json:"type"`
				Price int    `json:"price"`
			} `json:"prices"`
			MaxTicketsPerBooking int `json:"max_tickets_per_booking"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 25, resp.Data.MaxTicketsPerBooking)
	require.Len(t, resp.Data.Prices, 3)
	assert.Equal(t, "CHILD", resp.Data.Prices[1].Type)
	assert.Equal(t, 15, resp.Data.Prices[1].Price)
}
