package repository

import (
	"ticket-service/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Payment         PaymentLedgerRepository
	SeatReservation SeatReservationRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Payment:         NewPaymentLedgerRepository(db, log),
		SeatReservation: NewSeatReservationRepository(db, log),
	}
}
