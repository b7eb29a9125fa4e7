package repository

import (
	"context"
	"fmt"

	"ticket-service/internal/data/entity"
	"ticket-service/pkg/database"

	"go.uber.org/zap"
)

// PaymentLedgerRepository records charges on behalf of the payment provider.
// It satisfies the purchase flow's PaymentGateway.
type PaymentLedgerRepository interface {
	MakePayment(ctx context.Context, accountID int64, amount int) error
}

type paymentLedgerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentLedgerRepository(db database.PgxIface, log *zap.Logger) PaymentLedgerRepository {
	return &paymentLedgerRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentLedgerRepository) MakePayment(ctx context.Context, accountID int64, amount int) error {
	if accountID <= 0 {
		return fmt.Errorf("accountId must be a positive integer, got %d", accountID)
	}

	payment := entity.TicketPayment{
		LedgerEntry: entity.NewLedgerEntry(accountID),
		Amount:      amount,
	}

	query := `
		INSERT INTO ticket_payments (id, account_id, amount, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.AccountID,
		payment.Amount,
		payment.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to record payment",
			zap.Error(err),
			zap.Int64("account_id", accountID),
			zap.Int("amount", amount),
		)
		return fmt.Errorf("record payment for account %d: %w", accountID, err)
	}

	r.log.Info("Payment recorded",
		zap.String("payment_id", payment.ID.String()),
		zap.Int64("account_id", accountID),
		zap.Int("amount", amount),
	)
	return nil
}
