package entity

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

type TicketType string

const (
	TicketTypeAdult  TicketType = "ADULT"
	TicketTypeChild  TicketType = "CHILD"
	TicketTypeInfant TicketType = "INFANT"
)

var (
	ErrInvalidTicketType     = errors.New("type must be ADULT, CHILD, or INFANT")
	ErrInvalidTicketQuantity = errors.New("noOfTickets must be an integer")
)

// TicketTypes lists every bookable category in display order
var TicketTypes = []TicketType{TicketTypeAdult, TicketTypeChild, TicketTypeInfant}

func (t TicketType) IsValid() bool {
	switch t {
	case TicketTypeAdult, TicketTypeChild, TicketTypeInfant:
		return true
	}
	return false
}

// TicketTypeRequest is one line of a purchase: a category and how many tickets of it.
// Quantity bounds are business rules and are checked by the purchase validator, not here.
type TicketTypeRequest struct {
	ticketType  TicketType
	noOfTickets int
}

func NewTicketTypeRequest(ticketType TicketType, noOfTickets int) (TicketTypeRequest, error) {
	if !ticketType.IsValid() {
		return TicketTypeRequest{}, fmt.Errorf("%w: got %q", ErrInvalidTicketType, string(ticketType))
	}

	return TicketTypeRequest{ticketType: ticketType, noOfTickets: noOfTickets}, nil
}

// ParseTicketTypeRequest builds a request from loosely typed input, e.g. a JSON
// body decoded with UseNumber. Only whole numbers are accepted as quantity.
func ParseTicketTypeRequest(ticketType string, noOfTickets any) (TicketTypeRequest, error) {
	t := TicketType(ticketType)
	if !t.IsValid() {
		return TicketTypeRequest{}, fmt.Errorf("%w: got %q", ErrInvalidTicketType, ticketType)
	}

	n, ok := AsInteger(noOfTickets)
	if !ok || n < math.MinInt || n > math.MaxInt {
		return TicketTypeRequest{}, fmt.Errorf("%w: got %v", ErrInvalidTicketQuantity, noOfTickets)
	}

	return TicketTypeRequest{ticketType: t, noOfTickets: int(n)}, nil
}

func (r TicketTypeRequest) TicketType() TicketType {
	return r.ticketType
}

func (r TicketTypeRequest) NoOfTickets() int {
	return r.noOfTickets
}

func (r TicketTypeRequest) String() string {
	return fmt.Sprintf("%s x%d", r.ticketType, r.noOfTickets)
}

// ParseAccountID returns the account ID held in v, or 0 when v is not a whole number.
// Zero is never a valid account, so the purchase validator rejects it in its usual order.
func ParseAccountID(v any) int64 {
	id, ok := AsInteger(v)
	if !ok {
		return 0
	}
	return id
}

// AsInteger reports whether v holds a whole number and returns it.
// Strings are rejected even when they look numeric.
func AsInteger(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float32:
		return floatAsInteger(float64(n))
	case float64:
		return floatAsInteger(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		// 123e5 and 2.0 are whole numbers too
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatAsInteger(f)
	default:
		return 0, false
	}
}

func floatAsInteger(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
