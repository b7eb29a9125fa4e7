package usecase

import (
	"fmt"

	"ticket-service/internal/data/entity"

	"go.uber.org/zap"
)

const DefaultMaxTicketsPerBooking = 25

const (
	msgInsufficientAdults = "Request did not contain the required number of adults"
	msgInvalidAccountID   = "Invalid account ID provided"
	msgTicketLimitFormat  = "Booking cannot exceed the maximum limit of %d"
)

func IsAccountValid(accountID int64) bool {
	return accountID > 0
}

// HasSufficientAdults requires at least one adult, and no more infants than
// adults since every infant sits on an adult's lap. Children are not counted.
func HasSufficientAdults(requests []entity.TicketTypeRequest) bool {
	adults := countByType(requests, entity.TicketTypeAdult)
	infants := countByType(requests, entity.TicketTypeInfant)

	return adults != 0 && adults >= infants
}

func IsWithinLimit(requests []entity.TicketTypeRequest, maxTickets int) bool {
	return CountTickets(requests) <= maxTickets
}

// RequestValidator applies the purchase rules to one batch of ticket requests
type RequestValidator struct {
	maxTickets int
	log        *zap.Logger
}

func NewRequestValidator(maxTickets int, log *zap.Logger) *RequestValidator {
	return &RequestValidator{
		maxTickets: maxTickets,
		log:        log.With(zap.String("component", "request_validator")),
	}
}

func (v *RequestValidator) MaxTickets() int {
	return v.maxTickets
}

// Validate checks adults, then the account, then the ticket limit, and returns
// the first broken rule. The order decides which message a caller sees.
func (v *RequestValidator) Validate(accountID int64, requests []entity.TicketTypeRequest) error {
	if !HasSufficientAdults(requests) {
		v.log.Warn("Ticket request adult check failed",
			zap.Int64("account_id", accountID),
			zap.Int("adults", countByType(requests, entity.TicketTypeAdult)),
			zap.Int("infants", countByType(requests, entity.TicketTypeInfant)),
		)
		return newInvalidPurchase(msgInsufficientAdults)
	}

	if !IsAccountValid(accountID) {
		v.log.Warn("Ticket request account ID check failed", zap.Int64("account_id", accountID))
		return newInvalidPurchase(msgInvalidAccountID)
	}

	if !IsWithinLimit(requests, v.maxTickets) {
		v.log.Warn("Ticket count exceeded limit",
			zap.Int64("account_id", accountID),
			zap.Int("ticket_count", CountTickets(requests)),
			zap.Int("max_tickets", v.maxTickets),
		)
		return newInvalidPurchase(fmt.Sprintf(msgTicketLimitFormat, v.maxTickets))
	}

	return nil
}
