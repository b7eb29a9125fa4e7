package entity

import (
	"time"

	"github.com/google/uuid"
)

// LedgerEntry is the common shape of append-only rows written on behalf of the
// external payment and seat services
type LedgerEntry struct {
	ID        uuid.UUID `db:"id"`
	AccountID int64     `db:"account_id"`
	CreatedAt time.Time `db:"created_at"`
}

func NewLedgerEntry(accountID int64) LedgerEntry {
	return LedgerEntry{
		ID:        uuid.New(),
		AccountID: accountID,
		CreatedAt: time.Now(),
	}
}
