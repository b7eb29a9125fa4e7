package usecase

import (
	"context"
	"sync"
	"testing"
)

type chargeCall struct {
	AccountID int64
	Amount    int
}

type reserveCall struct {
	AccountID int64
	SeatCount int
}

// mockPaymentGateway records every charge and returns MakePaymentFunc's result, or nil when unset
type mockPaymentGateway struct {
	mu              sync.Mutex
	t               *testing.T
	MakePaymentFunc func(ctx context.Context, accountID int64, amount int) error
	Calls           []chargeCall
}

func newMockPaymentGateway(t *testing.T) *mockPaymentGateway {
	if t == nil {
		panic("missing required argument 't'")
	}
	return &mockPaymentGateway{t: t}
}

func (m *mockPaymentGateway) MakePayment(ctx context.Context, accountID int64, amount int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, chargeCall{AccountID: accountID, Amount: amount})
	if m.MakePaymentFunc == nil {
		return nil
	}
	return m.MakePaymentFunc(ctx, accountID, amount)
}

type mockSeatAllocator struct {
	mu              sync.Mutex
	t               *testing.T
	ReserveSeatFunc func(ctx context.Context, accountID int64, seatCount int) error
	Calls           []reserveCall
}

func newMockSeatAllocator(t *testing.T) *mockSeatAllocator {
	if t == nil {
		panic("missing required argument 't'")
	}
	return &mockSeatAllocator{t: t}
}

func (m *mockSeatAllocator) ReserveSeat(ctx context.Context, accountID int64, seatCount int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, reserveCall{AccountID: accountID, SeatCount: seatCount})
	if m.ReserveSeatFunc == nil {
		return nil
	}
	return m.ReserveSeatFunc(ctx, accountID, seatCount)
}
