package entity

type SeatReservation struct {
	LedgerEntry
	SeatCount int `db:"seat_count"`
}
