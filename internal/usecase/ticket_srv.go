package usecase

import (
	"context"
	"fmt"

	"ticket-service/internal/data/entity"
	"ticket-service/internal/dto/response"
	"ticket-service/pkg/utils"

	"go.uber.org/zap"
)

// PaymentGateway takes payment for a booking. A successful charge cannot be undone from here.
type PaymentGateway interface {
	MakePayment(ctx context.Context, accountID int64, amount int) error
}

// SeatAllocator reserves seats for a booking
type SeatAllocator interface {
	ReserveSeat(ctx context.Context, accountID int64, seatCount int) error
}

type TicketService interface {
	PurchaseTickets(ctx context.Context, accountID int64, requests ...entity.TicketTypeRequest) (*entity.BookingResult, error)
	GetTicketPrices(ctx context.Context) *response.TicketPricesResponse
}

const (
	prefixBooking     = "Error during booking: "
	prefixFinalise    = "finalise booking error: "
	prefixPayment     = "payment failure: "
	prefixReservation = "seat booking failure: "
)

type ticketService struct {
	payment   PaymentGateway
	seats     SeatAllocator
	validator *RequestValidator
	prices    TicketPrices
	log       *zap.Logger
}

func NewTicketService(payment PaymentGateway, seats SeatAllocator, config utils.TicketConfig, log *zap.Logger) TicketService {
	return &ticketService{
		payment:   payment,
		seats:     seats,
		validator: NewRequestValidator(config.MaxPerBooking, log),
		prices: TicketPrices{
			entity.TicketTypeAdult:  config.PriceAdult,
			entity.TicketTypeChild:  config.PriceChild,
			entity.TicketTypeInfant: config.PriceInfant,
		},
		log: log.With(zap.String("service", "ticket")),
	}
}

// PurchaseTickets validates the requests, takes payment and reserves seats.
// Every failure is an *InvalidPurchaseError prefixed with "Error during booking: ".
func (s *ticketService) PurchaseTickets(ctx context.Context, accountID int64, requests ...entity.TicketTypeRequest) (*entity.BookingResult, error) {
	if err := s.validator.Validate(accountID, requests); err != nil {
		s.log.Error("Ticket request rejected", zap.Int64("account_id", accountID), zap.Error(err))
		return nil, wrapInvalidPurchase(prefixBooking, err)
	}

	result, err := s.finaliseBooking(ctx, accountID, requests)
	if err != nil {
		s.log.Error("Booking failed", zap.Int64("account_id", accountID), zap.Error(err))
		return nil, wrapInvalidPurchase(prefixBooking, err)
	}

	return result, nil
}

func (s *ticketService) GetTicketPrices(ctx context.Context) *response.TicketPricesResponse {
	prices := make([]response.TicketPriceResponse, 0, len(entity.TicketTypes))
	for _, t := range entity.TicketTypes {
		prices = append(prices, response.TicketPriceResponse{
			Type:       t,
			Price:      s.prices[t],
			NeedsSeat:  t != entity.TicketTypeInfant,
			NeedsAdult: t != entity.TicketTypeAdult,
		})
	}

	return &response.TicketPricesResponse{
		Prices:               prices,
		MaxTicketsPerBooking: s.validator.MaxTickets(),
	}
}

// ==================== HELPER METHODS ====================

func (s *ticketService) finaliseBooking(ctx context.Context, accountID int64, requests []entity.TicketTypeRequest) (*entity.BookingResult, error) {
	price := CalculatePrice(requests, s.prices)
	seats := CountSeats(requests)
	ticketCount := CountTickets(requests)

	if err := s.makePayment(ctx, accountID, price); err != nil {
		return nil, wrapInvalidPurchase(prefixFinalise, err)
	}

	if err := s.reserveSeats(ctx, accountID, seats); err != nil {
		return nil, wrapInvalidPurchase(prefixFinalise, err)
	}

	s.log.Info("Payment and reservation completed",
		zap.Int64("account_id", accountID),
		zap.Int("ticket_count", ticketCount),
		zap.Int("seats", seats),
		zap.Int("price", price),
	)

	return &entity.BookingResult{
		Status:  entity.BookingStatusSuccess,
		Message: fmt.Sprintf("Reservation for %d (%d seats) at cost %d", ticketCount, seats, price),
	}, nil
}

func (s *ticketService) makePayment(ctx context.Context, accountID int64, amount int) error {
	if err := s.payment.MakePayment(ctx, accountID, amount); err != nil {
		s.log.Error("Payment service failed",
			zap.Error(err),
			zap.Int64("account_id", accountID),
			zap.Int("amount", amount),
		)
		return wrapInvalidPurchase(prefixPayment, err)
	}

	s.log.Debug("Payment taken", zap.Int64("account_id", accountID), zap.Int("amount", amount))
	return nil
}

// reserveSeats runs after payment has been taken. A failure here leaves the
// payment in place; there is no refund path.
func (s *ticketService) reserveSeats(ctx context.Context, accountID int64, seatCount int) error {
	if err := s.seats.ReserveSeat(ctx, accountID, seatCount); err != nil {
		s.log.Error("Seat reservation service failed after payment",
			zap.Error(err),
			zap.Int64("account_id", accountID),
			zap.Int("seats", seatCount),
		)
		return wrapInvalidPurchase(prefixReservation, err)
	}

	s.log.Debug("Seats reserved", zap.Int64("account_id", accountID), zap.Int("seats", seatCount))
	return nil
}
