package repository

import (
	"context"
	"fmt"

	"ticket-service/internal/data/entity"
	"ticket-service/pkg/database"

	"go.uber.org/zap"
)

// SeatReservationRepository records seat holds on behalf of the venue.
// It satisfies the purchase flow's SeatAllocator.
type SeatReservationRepository interface {
	ReserveSeat(ctx context.Context, accountID int64, seatCount int) error
}

type seatReservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeatReservationRepository(db database.PgxIface, log *zap.Logger) SeatReservationRepository {
	return &seatReservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat_reservation")),
	}
}

func (r *seatReservationRepository) ReserveSeat(ctx context.Context, accountID int64, seatCount int) error {
	if accountID <= 0 {
		return fmt.Errorf("accountId must be a positive integer, got %d", accountID)
	}

	reservation := entity.SeatReservation{
		LedgerEntry: entity.NewLedgerEntry(accountID),
		SeatCount:   seatCount,
	}

	query := `
		INSERT INTO seat_reservations (id, account_id, seat_count, created_at)
		VALUES ($1, $2, $3, $4)
	`

	result, err := r.db.Exec(ctx, query,
		reservation.ID,
		reservation.AccountID,
		reservation.SeatCount,
		reservation.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to reserve seats",
			zap.Error(err),
			zap.Int64("account_id", accountID),
			zap.Int("seat_count", seatCount),
		)
		return fmt.Errorf("reserve %d seats for account %d: %w", seatCount, accountID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reserve %d seats for account %d: nothing written", seatCount, accountID)
	}

	r.log.Info("Seats reserved",
		zap.String("reservation_id", reservation.ID.String()),
		zap.Int64("account_id", accountID),
		zap.Int("seat_count", seatCount),
	)
	return nil
}
