package escrow_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"
	"github.com/tdex-network/escrowd/internal/core/domain"
	"github.com/tdex-network/escrowd/internal/core/ports"
)

// **** Publisher ****

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishOfferCreatedEvent(offer domain.Offer) error {
	args := m.Called(offer)
	return args.Error(0)
}

func (m *mockPublisher) PublishOfferAcceptedEvent(offer domain.Offer) error {
	args := m.Called(offer)
	return args.Error(0)
}

func (m *mockPublisher) PublishOfferCancelledEvent(offer domain.Offer) error {
	args := m.Called(offer)
	return args.Error(0)
}

// **** Ledger ****

type movement struct {
	deposit bool
	account domain.Address
	payment domain.Payment
}

// recordingLedger forwards to the wrapped ledger and keeps track of every
// movement it was asked to perform. A positive failOnCall makes the
// n-th Transfer call fail instead.
type recordingLedger struct {
	ports.Ledger

	lock       sync.Mutex
	movements  []movement
	failOnCall int
	calls      int
}

func (l *recordingLedger) Deposit(
	ctx context.Context, from domain.Address, payment domain.Payment,
) error {
	l.lock.Lock()
	l.movements = append(l.movements, movement{true, from, payment})
	l.lock.Unlock()
	return l.Ledger.Deposit(ctx, from, payment)
}

func (l *recordingLedger) Transfer(
	ctx context.Context, to domain.Address, payment domain.Payment,
) error {
	l.lock.Lock()
	l.calls++
	fail := l.failOnCall > 0 && l.calls == l.failOnCall
	l.movements = append(l.movements, movement{false, to, payment})
	l.lock.Unlock()

	if fail {
		return domain.ErrInsufficientFunds
	}
	return l.Ledger.Transfer(ctx, to, payment)
}

func (l *recordingLedger) transfers() []movement {
	l.lock.Lock()
	defer l.lock.Unlock()

	list := make([]movement, 0)
	for _, m := range l.movements {
		if !m.deposit {
			list = append(list, m)
		}
	}
	return list
}

func (l *recordingLedger) reset() {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.movements = nil
	l.calls = 0
	l.failOnCall = 0
}
