package entity

type TicketPayment struct {
	LedgerEntry
	Amount int `db:"amount"`
}
