package database

import (
	"context"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS ticket_payments (
	id UUID PRIMARY KEY,
	account_id BIGINT NOT NULL,
	amount INTEGER NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS seat_reservations (
	id UUID PRIMARY KEY,
	account_id BIGINT NOT NULL,
	seat_count INTEGER NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
`

// InitSchema creates the ledger tables when they are missing
func InitSchema(ctx context.Context, db PgxIface) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}
